// Package client is a typed REST client for the talent directory API. It
// normalizes the two historical list shapes (bare array and paginated
// {results: [...]}) so callers always see a plain slice.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-talent-directory/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport (tests, custom timeouts).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// TokenPair mirrors the login response body.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// APIError carries the server's status code and message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Login obtains a token pair and remembers the access token for subsequent
// calls.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.do(ctx, http.MethodPost, "/api/accounts/auth/login/", map[string]string{
		"email":    email,
		"password": password,
	}, &pair)
	if err != nil {
		return nil, err
	}
	c.token = pair.Access
	return &pair, nil
}

// Register creates a new student account.
func (c *Client) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/api/accounts/auth/register/", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh exchanges the refresh token for a new access token and stores it.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	var body struct {
		Access string `json:"access"`
	}
	err := c.do(ctx, http.MethodPost, "/api/accounts/auth/refresh/", map[string]string{
		"refresh": refreshToken,
	}, &body)
	if err != nil {
		return "", err
	}
	c.token = body.Access
	return body.Access, nil
}

// SearchTalents queries the public directory.
func (c *Client) SearchTalents(ctx context.Context, query string) ([]domain.TalentProfile, error) {
	path := "/api/talents/public/"
	if query != "" {
		path += "?search=" + url.QueryEscape(query)
	}
	return c.listTalents(ctx, path)
}

// Search implements the Searcher contract of internal/search.
func (c *Client) Search(ctx context.Context, query string) ([]domain.TalentProfile, error) {
	return c.SearchTalents(ctx, query)
}

// LatestTalents returns the most recently registered public profiles.
func (c *Client) LatestTalents(ctx context.Context) ([]domain.TalentProfile, error) {
	return c.listTalents(ctx, "/api/talents/latest/")
}

// TopTalents returns the profiles with the most skills and experiences.
func (c *Client) TopTalents(ctx context.Context) ([]domain.TalentProfile, error) {
	return c.listTalents(ctx, "/api/talents/top/")
}

// Talent fetches one full profile by ID.
func (c *Client) Talent(ctx context.Context, id int64) (*domain.TalentProfile, error) {
	var profile domain.TalentProfile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/talents/%d/", id), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// MyProfile fetches the authenticated user's profile.
func (c *Client) MyProfile(ctx context.Context) (*domain.TalentProfile, error) {
	var profile domain.TalentProfile
	if err := c.do(ctx, http.MethodGet, "/api/talents/me/profile/", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Statistics fetches the public dashboard counters.
func (c *Client) Statistics(ctx context.Context) (*domain.Statistics, error) {
	var stats domain.Statistics
	if err := c.do(ctx, http.MethodGet, "/api/talents/statistics/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// FetchPhoto downloads raw photo bytes from an absolute or API-relative URL.
func (c *Client) FetchPhoto(ctx context.Context, photoURL string) ([]byte, error) {
	if !strings.HasPrefix(photoURL, "http://") && !strings.HasPrefix(photoURL, "https://") {
		photoURL = c.baseURL + "/" + strings.TrimLeft(photoURL, "/")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "photo fetch failed"}
	}
	return io.ReadAll(resp.Body)
}

// listTalents decodes either a bare array or a paginated envelope.
func (c *Client) listTalents(ctx context.Context, path string) ([]domain.TalentProfile, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeList(raw)
}

func normalizeList(raw json.RawMessage) ([]domain.TalentProfile, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []domain.TalentProfile{}, nil
	}

	if trimmed[0] == '[' {
		var list []domain.TalentProfile
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("client: malformed list response: %w", err)
		}
		return list, nil
	}

	var envelope struct {
		Results []domain.TalentProfile `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("client: malformed paginated response: %w", err)
	}
	if envelope.Results == nil {
		envelope.Results = []domain.TalentProfile{}
	}
	return envelope.Results, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("client: decoding %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts the envelope message, falling back to the raw body.
func errorMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	msg := strings.TrimSpace(string(data))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = "request failed"
	}
	return msg
}
