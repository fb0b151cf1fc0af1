// Package gateway wraps every outbound call to the travel backend. It injects
// the stored credential, normalizes transport and server failures into the
// fixed error taxonomy of pkg/util, and is the one component allowed a side
// effect on error: forcing the session out when the credential is rejected.
package gateway

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

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/observability"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

// SessionHooks is the slice of the session manager the gateway needs: the
// current credential, and the expiry reaction when the backend rejects it.
type SessionHooks interface {
	Token() (string, bool)
	Expire(ctx context.Context)
}

// Gateway is the single door to the travel backend.
type Gateway struct {
	base    *url.URL
	client  *http.Client
	session SessionHooks
	log     *zap.Logger
	metrics *observability.Metrics
}

// New builds a gateway against the backend base URL.
func New(baseURL string, timeout time.Duration, session SessionHooks, logger *zap.Logger, metrics *observability.Metrics) (*Gateway, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend base url %q missing scheme or host", baseURL)
	}

	return &Gateway{
		base:    base,
		client:  &http.Client{Timeout: timeout},
		session: session,
		log:     logger,
		metrics: metrics,
	}, nil
}

// Call performs an authorized backend request. A non-nil out receives the
// decoded JSON body. A 401 answer expires the session as a side effect.
func (g *Gateway) Call(ctx context.Context, method, path string, body, out any) error {
	return g.do(ctx, method, path, nil, body, out, true)
}

// CallQuery is Call with URL query parameters.
func (g *Gateway) CallQuery(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return g.do(ctx, method, path, query, body, out, true)
}

// CallPublic sends without session side effects, for the login/register
// exchange where a 401 means bad credentials rather than an expired session.
func (g *Gateway) CallPublic(ctx context.Context, method, path string, body, out any) error {
	return g.do(ctx, method, path, nil, body, out, false)
}

// Ping reports whether the backend answers at all. Any HTTP response counts
// as reachable.
func (g *Gateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return util.NewUnreachable(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body, out any, authorized bool) error {
	start := time.Now()
	requestID := uuid.NewString()

	target := g.base.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return util.NewClientSetup(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return util.NewClientSetup(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if token, ok := g.session.Token(); ok {
		// The stored credential is attached verbatim when it already
		// carries its scheme label.
		req.Header.Set("Authorization", auth.AuthorizationValue(token))
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.metrics.RecordCall(path, method, 0, time.Since(start))
		g.metrics.RecordFailure(path, method, util.CodeUnreachable)
		g.log.Warn("backend unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return util.NewUnreachable(err)
	}
	defer resp.Body.Close()

	g.metrics.RecordCall(path, method, resp.StatusCode, time.Since(start))
	g.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return g.decodeBody(resp.Body, out)

	case resp.StatusCode == http.StatusUnauthorized:
		message := serverMessage(resp.Body)
		if authorized {
			g.session.Expire(ctx)
			g.metrics.RecordFailure(path, method, util.CodeAuthExpired)
			return util.NewAuthExpired()
		}
		g.metrics.RecordFailure(path, method, util.CodeUnauthorized)
		return util.NewUnauthorized(message)

	case resp.StatusCode == http.StatusForbidden:
		g.metrics.RecordFailure(path, method, util.CodeForbidden)
		return util.NewForbidden()

	default:
		message := serverMessage(resp.Body)
		g.metrics.RecordFailure(path, method, util.CodeServerError)
		return util.NewServerError(resp.StatusCode, message)
	}
}

func (g *Gateway) decodeBody(r io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, r)
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read response body: %w", util.ErrUnexpectedResponse)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", util.ErrUnexpectedResponse)
	}
	return nil
}

// serverMessage extracts a human-readable message from an error response
// body: a structured {"message": ...} object, a bare JSON string, or plain
// text. Anything else yields "" and callers fall back to a generic message.
func serverMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return ""
	}

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &structured); err == nil && structured.Message != "" {
		return structured.Message
	}

	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		return strings.TrimSpace(plain)
	}

	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return ""
	}
	return text
}
