package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhiqi-health/wellness-client/internal/models"
)

// fakeSession implements SessionStore for testing.
type fakeSession struct {
	token  string
	clears int
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) ClearSession() {
	f.clears++
	f.token = ""
}

func newTestClient(t *testing.T, handler http.Handler, session *fakeSession) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second, session, nil), srv
}

func TestRequestInterceptor(t *testing.T) {
	var got *http.Request
	mux := chi.NewRouter()
	mux.Get("/api/products/", func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{"products":[]}`))
	})

	t.Run("with token", func(t *testing.T) {
		c, _ := newTestClient(t, mux, &fakeSession{token: "tok-abc"})
		_, err := c.Products.List(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, "Bearer tok-abc", got.Header.Get("Authorization"))
		assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
		assert.NotEmpty(t, got.URL.Query().Get("_t"), "GET requests carry a cache-busting timestamp")
	})

	t.Run("without token", func(t *testing.T) {
		c, _ := newTestClient(t, mux, &fakeSession{})
		_, err := c.Products.List(context.Background(), nil)
		require.NoError(t, err)

		assert.Empty(t, got.Header.Get("Authorization"))
	})

	t.Run("query params preserved", func(t *testing.T) {
		c, _ := newTestClient(t, mux, &fakeSession{})
		params := url.Values{"category": {"tea"}, "page": {"2"}}
		_, err := c.Products.List(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, "tea", got.URL.Query().Get("category"))
		assert.Equal(t, "2", got.URL.Query().Get("page"))
	})
}

func TestUnauthorizedClearsSessionOnce(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"token expired"}`))
	})

	session := &fakeSession{token: "stale"}
	c, _ := newTestClient(t, mux, session)

	redirects := 0
	c.OnUnauthorized(func() { redirects++ })

	_, err := c.Auth.Profile(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Equal(t, 1, session.clears, "session cleared exactly once per failing call")
	assert.Equal(t, 1, redirects)
	assert.Empty(t, session.token)

	// Error is re-signaled to the caller with the backend message.
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Msg)
}

func TestErrorClassification(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/api/content/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"msg":"content not found"}`))
	})
	mux.Post("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	})

	session := &fakeSession{token: "tok"}
	c, _ := newTestClient(t, mux, session)

	t.Run("not found keeps session", func(t *testing.T) {
		_, err := c.Content.Get(context.Background(), 42)
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindHTTP, apiErr.Kind)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "content not found", apiErr.Msg)
		assert.Zero(t, session.clears, "non-401 errors must not alter state")
	})

	t.Run("server error with non-JSON body", func(t *testing.T) {
		_, err := c.Orders.Create(context.Background(), map[string]any{"items": []int{1}})
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Empty(t, apiErr.Msg)
		assert.Equal(t, "boom", string(apiErr.Body))
	})

	t.Run("network error", func(t *testing.T) {
		dead := New("http://127.0.0.1:1", time.Second, session, nil)
		_, err := dead.Bases.List(context.Background())
		require.Error(t, err)
		assert.True(t, IsNetworkError(err))
		assert.False(t, IsAuthError(err))
	})

	t.Run("local error", func(t *testing.T) {
		bad := New("http://host\x7f", time.Second, session, nil)
		_, err := bad.Bases.List(context.Background())
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindLocal, apiErr.Kind)
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "prefers backend message",
			err:      &Error{Kind: KindHTTP, Status: 400, Msg: "username taken"},
			fallback: "operation failed",
			want:     "username taken",
		},
		{
			name:     "http error without message falls back",
			err:      &Error{Kind: KindHTTP, Status: 500},
			fallback: "operation failed",
			want:     "operation failed",
		},
		{
			name:     "network error gets fixed message",
			err:      &Error{Kind: KindNetwork, Err: errors.New("dial tcp: refused")},
			fallback: "operation failed",
			want:     "network connection failed, please check your network",
		},
		{
			name:     "plain error uses its text",
			err:      errors.New("something else"),
			fallback: "operation failed",
			want:     "something else",
		},
		{
			name:     "nil error uses fallback",
			err:      nil,
			fallback: "operation failed",
			want:     "operation failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandleError(tt.err, tt.fallback))
		})
	}
}

func TestLoginDecodesPayload(t *testing.T) {
	mux := chi.NewRouter()
	mux.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"username":"alice"`) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"access_token":"tok-new","msg":"welcome"}`))
	})

	c, _ := newTestClient(t, mux, &fakeSession{})
	resp, err := c.Auth.Login(context.Background(), models.Credentials{Username: "alice", Password: "abcdef1"})
	require.NoError(t, err)

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, resp.Decode(&payload))
	assert.Equal(t, "tok-new", payload.AccessToken)
	assert.Equal(t, "welcome", resp.Msg)
}

func TestUploadFile(t *testing.T) {
	var (
		gotField string
		gotBody  []byte
	)
	mux := chi.NewRouter()
	mux.Post("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		f, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		gotField = header.Filename
		gotBody, _ = io.ReadAll(f)
		w.Write([]byte(`{"url":"/static/photo.jpg"}`))
	})

	c, _ := newTestClient(t, mux, &fakeSession{token: "tok"})

	var lastSent, lastTotal int64
	resp, err := c.Upload.File(context.Background(), "photo.jpg",
		strings.NewReader("fake image bytes"),
		func(sent, total int64) { lastSent, lastTotal = sent, total })
	require.NoError(t, err)

	assert.Equal(t, "photo.jpg", gotField)
	assert.Equal(t, "fake image bytes", string(gotBody))
	assert.Equal(t, lastTotal, lastSent, "progress reaches the full payload size")
	assert.Positive(t, lastTotal)

	var payload struct {
		URL string `json:"url"`
	}
	require.NoError(t, resp.Decode(&payload))
	assert.Equal(t, "/static/photo.jpg", payload.URL)
}
