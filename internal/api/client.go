// Package api wraps the platform REST API behind a typed endpoint
// catalog. Every outbound request passes a request interceptor (bearer
// token, cache-busting, request ID) and every response passes a
// response interceptor that classifies failures and handles expired
// sessions.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionStore provides the persisted credentials attached to outbound
// requests. ClearSession is invoked when the backend rejects the
// session with 401; it must remove both the token and the user profile.
type SessionStore interface {
	Token() string
	ClearSession()
}

// Response is the decoded result of a successful API call. Data is the
// raw backend payload; the client never interprets it beyond extracting
// the diagnostic msg field.
type Response struct {
	StatusCode int
	Data       json.RawMessage
	Msg        string
}

// Decode unmarshals the response payload into v.
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

// Client is the HTTP client wrapper. Construct with New; the zero value
// is not usable.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	session SessionStore

	// onUnauthorized runs after a 401 response has cleared the
	// persisted session. Used by the bootstrap to force navigation
	// back to the login route. Fire-and-forget, never retried.
	onUnauthorized func()

	Auth       AuthService
	Content    ContentService
	Products   ProductService
	Activities ActivityService
	Bases      BaseService
	Orders     OrderService
	Payments   PaymentService
	Reviews    ReviewService
	User       UserService
	Admin      AdminService
	Upload     UploadService
}

// New constructs a Client for the given base URL with a fixed request
// timeout. session supplies the bearer token and absorbs forced
// logouts; log must not be nil in production use.
func New(baseURL string, timeout time.Duration, session SessionStore, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
		session: session,
	}
	c.Auth = AuthService{c}
	c.Content = ContentService{c}
	c.Products = ProductService{c}
	c.Activities = ActivityService{c}
	c.Bases = BaseService{c}
	c.Orders = OrderService{c}
	c.Payments = PaymentService{c}
	c.Reviews = ReviewService{c}
	c.User = UserService{c}
	c.Admin = AdminService{c}
	c.Upload = UploadService{c}
	return c
}

// OnUnauthorized registers the hook fired after a 401 clears the
// persisted session.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// do builds, sends and classifies a single API request. The returned
// error, when non-nil, is always a *Error; the original failure is
// never swallowed.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		c.log.Error("failed to build request URL", zap.String("path", path), zap.Error(err))
		return nil, &Error{Kind: KindLocal, Err: err}
	}

	q := u.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	// Cache-busting timestamp on reads.
	if method == http.MethodGet {
		q.Set("_t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	}
	u.RawQuery = q.Encode()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.log.Error("failed to encode request body", zap.String("path", path), zap.Error(err))
			return nil, &Error{Kind: KindLocal, Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, &Error{Kind: KindLocal, Err: err}
	}
	c.intercept(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// intercept attaches the persisted bearer token and a request ID to an
// outbound request.
func (c *Client) intercept(req *http.Request) {
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// send executes the request and runs the response interceptor.
func (c *Client) send(req *http.Request) (*Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("network error, request got no response",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Path),
			zap.Error(err))
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}

	msg := extractMsg(raw)

	if resp.StatusCode >= 400 {
		return nil, c.classify(req, resp.StatusCode, raw, msg)
	}

	// Some backend handlers report business failures inside a 200
	// response; surface them in the log but never touch the payload.
	if msg != "" && containsErrorMarker(msg) {
		c.log.Warn("business error in response",
			zap.String("url", req.URL.Path),
			zap.String("msg", msg))
	}

	return &Response{StatusCode: resp.StatusCode, Data: raw, Msg: msg}, nil
}

// classify logs the failure per status category and wraps it in a
// tagged error. A 401 additionally tears down the persisted session and
// fires the unauthorized hook, exactly once per failing call.
func (c *Client) classify(req *http.Request, status int, raw []byte, msg string) *Error {
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.Path),
		zap.String("msg", msg),
	}

	switch status {
	case http.StatusBadRequest:
		c.log.Error("bad request", fields...)
	case http.StatusUnauthorized:
		c.log.Error("unauthorized, clearing session", fields...)
		if c.session != nil {
			c.session.ClearSession()
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	case http.StatusForbidden:
		c.log.Error("forbidden", fields...)
	case http.StatusNotFound:
		c.log.Error("resource not found", fields...)
	case http.StatusInternalServerError:
		c.log.Error("server error", fields...)
	default:
		c.log.Error(fmt.Sprintf("HTTP %d error", status), fields...)
	}

	return &Error{Kind: KindHTTP, Status: status, Body: raw, Msg: msg}
}

// extractMsg pulls the conventional {"msg": "..."} field out of a
// backend payload. Non-JSON bodies yield "".
func extractMsg(raw []byte) string {
	var envelope struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Msg
}

// containsErrorMarker reports whether a business message flags a
// failure. The backend writes messages in Chinese with an English
// fallback.
func containsErrorMarker(msg string) bool {
	return strings.Contains(msg, "错误") ||
		strings.Contains(strings.ToLower(msg), "error") ||
		strings.Contains(strings.ToLower(msg), "failed")
}
