package main

import (
	"chat-core/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan, empty for every known prefix")
	limit := flag.Int("limit", 200, "Maximum rows per prefix")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	prefixes := repositories.Prefixes
	if *prefix != "" {
		prefixes = []string{*prefix}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		for _, p := range prefixes {
			if err := scan(txn, p, *limit, table); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func scan(txn *badger.Txn, prefix string, limit int, table *tablewriter.Table) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	prefixBytes := []byte(prefix)
	rows := 0
	for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes) && rows < limit; it.Next() {
		item := it.Item()
		rawKey := string(item.Key())
		err := item.Value(func(v []byte) error {
			table.Append([]string{rawKey, strings.TrimSuffix(prefix, ":"), describe(v)})
			return nil
		})
		if err != nil {
			return err
		}
		rows++
	}
	return nil
}

// describe renders a BSON document as sorted key=value pairs. Index entries
// hold either nothing or a bare id and are shown as is.
func describe(v []byte) string {
	if len(v) == 0 {
		return "-"
	}
	var doc bson.M
	if err := bson.Unmarshal(v, &doc); err != nil {
		return string(v)
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, doc[k]))
	}
	return strings.Join(parts, " ")
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
