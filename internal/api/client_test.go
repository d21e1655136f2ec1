package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Get(ctx context.Context) (string, error) {
	return s.token, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(baseURL, token string) *Client {
	return New(Config{BaseURL: baseURL, Timeout: 5 * time.Second}, &staticTokens{token: token}, testLogger())
}

func TestAuthenticatedRequestCarriesBearer(t *testing.T) {
	var gotAuth, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "tok1")
	_, err := c.Feed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok1", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestNoTokenOmitsAuthorizationHeader(t *testing.T) {
	var hadHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "")
	_, err := c.Feed(context.Background())
	require.NoError(t, err)

	// The header must be absent entirely, not an empty-string header.
	assert.False(t, hadHeader)
}

func TestPublicEndpointsNeverAttachBearer(t *testing.T) {
	var hadHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"access_token":"tok1"}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "stored-token")
	token, err := c.Login(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "tok1", token)
	assert.False(t, hadHeader)
}

func TestPopularTopicsCategoryEncoding(t *testing.T) {
	var rawQueries []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQueries = append(rawQueries, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "")

	_, err := c.PopularTopics(context.Background(), "경제")
	require.NoError(t, err)
	_, err = c.PopularTopics(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, rawQueries, 2)
	assert.Equal(t, "category=%EA%B2%BD%EC%A0%9C", rawQueries[0])
	assert.Equal(t, "", rawQueries[1])
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "expired")
	_, err := c.Feed(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Could not validate credentials", apiErr.Message)
}

func TestNon2xxWithUnparseableBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "")
	_, err := c.PopularTopics(context.Background(), "")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, defaultErrorMessage, apiErr.Message)
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	c := newTestClient(ts.URL, "")
	_, err := c.Feed(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, defaultErrorMessage, Message(err))
}

func TestNewsletterEscapesID(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"id":"n1","topic_id":"t1","newsletter_text":"본문","created_at":"2025-01-01T00:00:00Z","citations":[],"sources":[]}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "tok")
	detail, err := c.Newsletter(context.Background(), "n 1")
	require.NoError(t, err)

	assert.Equal(t, "/newsletter/n%201", gotPath)
	assert.Equal(t, "n1", detail.ID)
	assert.Equal(t, "t1", detail.TopicID)
}

func TestSendEventPostsBody(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, "tok")
	value := 5.0
	err := c.SendEvent(context.Background(), domain.Event{
		EventType:    domain.EventDwell,
		NewsletterID: "n1",
		TopicID:      "t1",
		Value:        &value,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/events", gotPath)
	assert.JSONEq(t, `{"event_type":"dwell","newsletter_id":"n1","topic_id":"t1","value":5}`, gotBody)
}
