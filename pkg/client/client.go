// Package client provides a typed HTTP client for the score tracker API.
// Chat-bot adapters and other consumers use it instead of hand-rolling
// requests against the wire contract.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUserNotFound is returned by SubmitScore when the telegram id was never
// registered
var ErrUserNotFound = errors.New("user not found")

// Student is the wire representation of a registered student
type Student struct {
	ID         int64  `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// Score is the wire representation of one subject score
type Score struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
}

// Client calls the score tracker API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Register registers a student. Registering the same telegram id again
// returns the stored record unchanged.
func (c *Client) Register(ctx context.Context, telegramID int64, firstName, lastName string) (*Student, error) {
	payload := map[string]interface{}{
		"telegram_id": telegramID,
		"first_name":  firstName,
		"last_name":   lastName,
	}

	var student Student
	if err := c.post(ctx, "/users/", payload, &student); err != nil {
		return nil, err
	}

	return &student, nil
}

// SubmitScore records a score for a subject, overwriting any previous score
// for the same subject. Returns ErrUserNotFound when telegramID is not
// registered.
func (c *Client) SubmitScore(ctx context.Context, telegramID int64, subject string, score int) (*Score, error) {
	payload := map[string]interface{}{
		"telegram_id": telegramID,
		"subject":     subject,
		"score":       score,
	}

	var result Score
	if err := c.post(ctx, "/scores/", payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetScores returns all scores recorded for telegramID, possibly empty
func (c *Client) GetScores(ctx context.Context, telegramID int64) ([]Score, error) {
	url := fmt.Sprintf("%s/scores/%d", c.baseURL, telegramID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var scores []Score
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return scores, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrUserNotFound
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
