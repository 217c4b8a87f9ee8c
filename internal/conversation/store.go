package conversation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/logs"

	"go.uber.org/zap"
)

const (
	serviceStore = "conversation-store"
	table        = "conversations"
)

// httpDoHook is swapped in tests.
var httpDoHook = func(c *http.Client, req *http.Request) (*http.Response, error) {
	return c.Do(req)
}

// Store reads and appends conversation turns in the Supabase REST API. It
// authenticates with the service key, never with the end user's token.
type Store struct {
	BaseURL    string
	ServiceKey string
	HTTPClient *http.Client
	Timeout    time.Duration
	Now        func() time.Time
}

func NewStore(baseURL, serviceKey string, timeout time.Duration) *Store {
	return &Store{
		BaseURL:    baseURL,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{},
		Timeout:    timeout,
		Now:        time.Now,
	}
}

// Read returns the user's most recent turns, oldest first. Rows whose
// message cannot be decoded are skipped.
func (s *Store) Read(ctx context.Context, userID string) ([]Turn, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q := url.Values{}
	q.Set("select", "message")
	q.Set("user_id", "eq."+userID)
	q.Set("order", "timestamp.desc")
	q.Set("limit", strconv.Itoa(HistoryLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint()+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build history request: %w", err)
	}

	body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, apperror.Malformed(serviceStore, "history is not a json array")
	}

	log := logs.FromContext(ctx)
	newestFirst := make([]Turn, 0, len(rows))
	for i, row := range rows {
		var turn Turn
		if err := json.Unmarshal(row.Message, &turn); err != nil || !turn.Role.Valid() {
			log.Debug("skipping unreadable history row", zap.Int("row", i), zap.ByteString("message", row.Message))
			continue
		}
		newestFirst = append(newestFirst, turn)
	}

	history := make([]Turn, len(newestFirst))
	for i, turn := range newestFirst {
		history[len(newestFirst)-1-i] = turn
	}

	log.Debug("history loaded", zap.Int("rows", len(rows)), zap.Int("turns", len(history)))
	return history, nil
}

// Write appends one turn stamped with the current time.
func (s *Store) Write(ctx context.Context, userID string, turn Turn) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := json.Marshal(record{
		UserID:    userID,
		Message:   turn,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal turn: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	if _, err := s.do(req); err != nil {
		return err
	}

	logs.FromContext(ctx).Debug("turn stored", zap.String("role", string(turn.Role)))
	return nil
}

func (s *Store) endpoint() string {
	return s.BaseURL + "/rest/v1/" + table
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(ctx, s.Timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Store) do(req *http.Request) ([]byte, error) {
	req.Header.Set("apikey", s.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)

	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpDoHook(httpClient, req)
	if err != nil {
		return nil, apperror.Transport(serviceStore, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Transport(serviceStore, fmt.Errorf("read body: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.Upstream(serviceStore, resp.StatusCode, string(body))
	}
	return body, nil
}
