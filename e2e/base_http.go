package e2e

import (
	"bytes"
	"chat-core/auth"
	"chat-core/projection"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
	tokens *auth.Tokens
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ChatAddr == "" {
		s.T().Skip("E2E_CHAT_ADDR not set")
	}
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.tokens = auth.NewTokens(s.Config.JWTSecret, time.Hour)
}

// Step prints a colorized header for a scenario step.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Call sends body as JSON on behalf of userID and decodes the response into
// out when out is not nil. It returns the status code.
func (s *BaseHTTPSuite) Call(userID uuid.UUID, method, path string, body, out any) int {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		s.Require().NoError(err)
	}
	req, err := http.NewRequest(method, s.Config.ChatAddr+path, bytes.NewReader(payload))
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+s.token(userID))
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	line := fmt.Sprintf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		line += fmt.Sprintf("\nREQUEST: %s\nRESPONSE: %s", payload, data)
	}
	s.T().Log(line)

	if out != nil && len(data) > 0 {
		s.Require().NoError(json.Unmarshal(data, out))
	}
	return resp.StatusCode
}

// Listen opens a websocket for userID.
func (s *BaseHTTPSuite) Listen(userID uuid.UUID) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.Config.ChatAddr, "http") + "/ws?token=" + s.token(userID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err, "Failed to open websocket at "+url)
	return conn
}

// Next waits for the next envelope of the given type, skipping the others.
func (s *BaseHTTPSuite) Next(conn *websocket.Conn, eventType string) projection.Envelope {
	deadline := time.Now().Add(5 * time.Second)
	for {
		s.Require().NoError(conn.SetReadDeadline(deadline))
		_, data, err := conn.ReadMessage()
		s.Require().NoError(err, "no "+eventType+" envelope received")
		env, err := projection.DecodeEnvelope(data)
		s.Require().NoError(err)
		if string(env.Type) == eventType {
			return env
		}
	}
}

func (s *BaseHTTPSuite) token(userID uuid.UUID) string {
	token, err := s.tokens.Generate(userID, time.Now())
	s.Require().NoError(err)
	return token
}
