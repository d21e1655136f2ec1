package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
	"github.com/khj1212k/news-recommendation-service/internal/metrics"
)

// TokenSource yields the current session credential, "" when absent.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the recommendation backend. Requests are sent once; there
// is no retry at this layer, a user-initiated reload is the recovery path.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *slog.Logger
}

// New creates a backend client. tokens may be nil for a purely public client.
func New(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		tokens:  tokens,
		logger:  logger.With("component", "api"),
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "login", credentialsRequest{Email: email, Password: password}, false, &out)
	if err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Signup registers a new account and returns its session token.
func (c *Client) Signup(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/signup", "signup", credentialsRequest{Email: email, Password: password}, false, &out)
	if err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// Feed fetches the personalized feed, in display order.
func (c *Client) Feed(ctx context.Context) ([]domain.FeedItem, error) {
	var out struct {
		Items []domain.FeedItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/feed", "feed", nil, true, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Newsletter fetches one newsletter with its citations and sources.
func (c *Client) Newsletter(ctx context.Context, id string) (*domain.NewsletterDetail, error) {
	var out domain.NewsletterDetail
	path := "/newsletter/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, "newsletter", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PopularTopics lists popular topics, optionally filtered by category.
// An empty category omits the query parameter entirely.
func (c *Client) PopularTopics(ctx context.Context, category string) ([]domain.PopularTopic, error) {
	path := "/topics/popular"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out struct {
		Items []domain.PopularTopic `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, path, "popular", nil, false, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// UpdatePreferences stores the user's onboarding interests.
func (c *Client) UpdatePreferences(ctx context.Context, prefs domain.Preferences) error {
	return c.do(ctx, http.MethodPost, "/me/preferences", "preferences", prefs, true, nil)
}

// SendEvent submits one behavioral event. The ack body is ignored.
func (c *Client) SendEvent(ctx context.Context, event domain.Event) error {
	return c.do(ctx, http.MethodPost, "/events", "events", event, true, nil)
}

func (c *Client) do(ctx context.Context, method, path, endpoint string, body any, authed bool, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if authed && c.tokens != nil {
		token, err := c.tokens.Get(ctx)
		if err != nil {
			// A broken token store degrades to an unauthenticated request.
			c.logger.Warn("token read failed", "error", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequests.WithLabelValues(endpoint, "transport").Inc()
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload any
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			payload = map[string]any{}
		}
		msg := extractErrorMessage(payload)
		metrics.APIRequests.WithLabelValues(endpoint, "api_error").Inc()
		c.logger.Debug("request rejected",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"message", msg,
		)
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.APIRequests.WithLabelValues(endpoint, "transport").Inc()
			return fmt.Errorf("decode response: %w", err)
		}
	}

	metrics.APIRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}
