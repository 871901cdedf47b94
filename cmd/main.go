package main

import (
	"chat-core/auth"
	"chat-core/contract"
	"chat-core/domain/event"
	"chat-core/infrastructure/http/server"
	"chat-core/infrastructure/kafka"
	"chat-core/infrastructure/redis"
	"chat-core/internal"
	"chat-core/notification"
	"chat-core/observability"
	"chat-core/projection"
	"chat-core/reconciliation"
	"chat-core/repositories"
	"chat-core/runtime"
	"chat-core/runtime/workers"
	"chat-core/services"
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the server lifecycle, so deferred
// cleanups run before the process exits.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	instanceID := config.InstanceID
	if instanceID == "" {
		instanceID = uuid.NewString()
	}
	log = log.With("instance_id", instanceID)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	messageRepository := repositories.NewMessageRepository(db, log)
	conversationRepository := repositories.NewConversationRepository(db, log)
	connectionRepository := repositories.NewConnectionRepository(db)
	groupRepository := repositories.NewGroupRepository(db)
	accountRepository := repositories.NewAccountRepository(db)

	// 3. Clients & broadcasting
	registry := runtime.NewRegistry()
	hub := runtime.NewHub(log, registry, config.SinkTimeout, config.MaxFanout)
	broadcasters := runtime.Broadcasters{hub}

	var timeline *projection.Timeline
	if config.TimelineSize > 0 {
		timeline = projection.NewTimeline(config.TimelineSize)
		registry.Subscribe("debug-timeline", timeline)
	}

	contentSignals := make(chan event.ContentDeleted, config.ContentEventBuffer)
	monitoring := observability.NewMonitoringManager(log)
	var background []contract.Worker

	if config.RedisAddr != "" {
		client := redis.NewClient(config.RedisAddr)
		defer func() { _ = client.Close() }()
		broadcasters = append(broadcasters, redis.NewRelay(log, client, config.RedisChannel, instanceID))
		background = append(background, redis.NewSubscriber(log, client, config.RedisChannel, instanceID, hub))
		log.Info("Relaying notifications through redis", "addr", config.RedisAddr, "channel", config.RedisChannel)
	}

	dispatcher := notification.NewDispatcher(log, broadcasters)
	reconciler := reconciliation.NewReconciler(log, messageRepository, dispatcher)
	background = append(background,
		workers.NewContentRemovalWorker(log, reconciler, contentSignals),
		workers.NewHealthMonitoringWorker(log, monitoring, registry, contentSignals, config.MetricInterval),
	)

	if brokers := config.Brokers(); len(brokers) > 0 {
		consumer := kafka.NewContentConsumer(log, kafka.NewReader(brokers, config.KafkaContentTopic, config.KafkaGroupID), contentSignals)
		defer func() { _ = consumer.Close() }()
		background = append(background, consumer)
		log.Info("Consuming content deletions from kafka", "topic", config.KafkaContentTopic)
	}

	// 4. Services & HTTP
	chatService := services.NewChatService(log, conversationRepository, messageRepository, dispatcher)
	conversationService := services.NewConversationService(log, conversationRepository, connectionRepository, groupRepository, accountRepository)
	accountService := services.NewAccountService(log, accountRepository, conversationRepository, connectionRepository)
	tokens := auth.NewTokens(config.JWTSecret, config.JWTTokenDuration)

	handlers := server.NewHandlers(log, chatService, conversationService, accountService, contentSignals)
	router := server.NewRouter(
		handlers,
		server.NewWebSocketHandler(log, registry, config.ClientBufferSize),
		tokens,
		registry,
		server.Debug{Timeline: timeline, Monitoring: monitoring},
		config.RequestTimeout,
	)
	srv := &http.Server{Addr: config.Address(), Handler: router, ReadHeaderTimeout: 10 * time.Second}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(background...)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	// Use an error channel to capture ListenAndServe() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", srv.Addr, "at", time.Now().UTC())
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case serveErr = <-errChan:
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	stop()
	<-supervisorDone
	log.Info("Program stopped cleanly")

	return serveErr
}
