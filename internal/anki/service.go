package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kpauljoseph/ankihelper/internal/apperr"
	"github.com/kpauljoseph/ankihelper/pkg/logger"
	"github.com/kpauljoseph/ankihelper/pkg/models"
)

const (
	DefaultAnkiConnectURL = "http://127.0.0.1:8765"
)

type Service struct {
	ankiConnectURL string
	client         *http.Client
	logger         *logger.Logger
}

type AnkiConnectRequest struct {
	Action  string      `json:"action"`
	Version int         `json:"version"`
	Params  interface{} `json:"params"`
}

type Note struct {
	DeckName  string     `json:"deckName"`
	ModelName string     `json:"modelName"`
	Fields    NoteFields `json:"fields"`
	Tags      []string   `json:"tags"`
}

type NoteFields struct {
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

type Option func(*Service)

// WithHTTPClient replaces the default client. The default has no timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

func NewService(ankiConnectURL string, logger *logger.Logger, options ...Option) *Service {
	if ankiConnectURL == "" {
		ankiConnectURL = DefaultAnkiConnectURL
	}

	s := &Service{
		ankiConnectURL: ankiConnectURL,
		client:         &http.Client{},
		logger:         logger,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

func (s *Service) URL() string {
	return s.ankiConnectURL
}

// CheckConnection asks AnkiConnect for its version. It is only used to warn at
// startup; the server runs either way.
func (s *Service) CheckConnection(ctx context.Context) (int, error) {
	request := AnkiConnectRequest{
		Action:  "version",
		Version: ANKI_CONNECT_VERSION,
		Params:  map[string]interface{}{},
	}

	status, body, err := s.post(ctx, request)
	if err != nil {
		return 0, fmt.Errorf("could not connect to Anki at %s. Please ensure:\n"+
			"1. Anki is running https://apps.ankiweb.net/#download\n"+
			"2. AnkiConnect add-on is installed (code: 2055492159) https://ankiweb.net/shared/info/2055492159\n"+
			"3. Anki has been restarted after installing AnkiConnect: %w", s.ankiConnectURL, err)
	}
	if !isSuccess(status) {
		return 0, fmt.Errorf("AnkiConnect returned status %d: %s", status, body)
	}

	var result struct {
		Error  *string         `json:"error"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Error != nil {
		return 0, fmt.Errorf("anki error: %s", *result.Error)
	}

	var version int
	if err := json.Unmarshal(result.Result, &version); err != nil {
		return 0, fmt.Errorf("failed to parse version: %w", err)
	}

	return version, nil
}

// AddNote creates a Basic note in deckName and returns AnkiConnect's response
// body untouched. Only the HTTP status decides success; an "error" field in a
// 200 response is left for the caller to show.
func (s *Service) AddNote(ctx context.Context, deckName string, card models.AnkiCardRequest) (string, error) {
	if isBlank(card.Danish) || isBlank(card.English) {
		return "", apperr.Validation("Both Danish and English text are required")
	}

	note := NewNote(deckName, card)
	s.logger.Debug("Adding note to deck %s: %q", deckName, note.Fields.Front)
	s.logger.Trace("Back field: %q", note.Fields.Back)

	request := AnkiConnectRequest{
		Action:  "addNote",
		Version: ANKI_CONNECT_VERSION,
		Params: map[string]interface{}{
			"note": note,
		},
	}

	status, body, err := s.post(ctx, request)
	if err != nil {
		return "", apperr.Downstream(fmt.Sprintf("Error adding card to Anki: %v", err), err)
	}

	if !isSuccess(status) {
		s.logger.Debug("AnkiConnect returned status %d", status)
		return "", apperr.Downstream(fmt.Sprintf("AnkiConnect error: %s", body), nil)
	}

	return string(body), nil
}

func (s *Service) post(ctx context.Context, req AnkiConnectRequest) (int, []byte, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.ankiConnectURL, bytes.NewReader(reqBody))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
