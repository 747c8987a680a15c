package backend

// Package backend implements the typed HTTP client for the ChefBazaar
// marketplace REST API. Clients are session-scoped: every Client is
// built for one session and injects that session's bearer token into
// each outbound request.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	domainauth "github.com/SowvikSuvo/chefbazaar-gateway/internal/domain/auth"
	apperrors "github.com/SowvikSuvo/chefbazaar-gateway/internal/errors"
	"github.com/SowvikSuvo/chefbazaar-gateway/internal/ports"
)

// SignOutFunc tears down a session after the backend rejects its
// credentials. It must be safe to call from any goroutine.
type SignOutFunc func(ctx context.Context, sessionID string)

// Client issues authenticated requests against the marketplace backend.
//
// A fresh bearer token is minted for every request; the client never
// caches a token across calls, so credential refresh and revocation
// take effect on the very next request. If minting fails the request
// is not sent at all.
//
// The first 401 or 403 from the backend triggers the sign-out callback
// exactly once for the client's session; concurrent failing requests
// still produce a single sign-out.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	sess    *domainauth.Session // nil for unauthenticated clients
	tokens  ports.TokenSource
	signOut SignOutFunc
	once    sync.Once
}

// ClientConfig holds the pieces shared by all session clients.
type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Tokens     ports.TokenSource
	SignOut    SignOutFunc
}

// NewClient builds a client scoped to the given session. A nil session
// produces an unauthenticated client: no Authorization header is sent
// and a 401/403 is reported without a sign-out.
func NewClient(cfg ClientConfig, sess *domainauth.Session) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    hc,
		logger:  logger,
		sess:    sess,
		tokens:  cfg.Tokens,
		signOut: cfg.SignOut,
	}
}

// ListEnvelope is the backend's list response shape.
type ListEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// MutationResult is the backend's mutation response shape.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// errorBody is the backend's error payload; Message may be empty.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "encode %s %s request", method, path)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "build %s %s request", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	// Mint a fresh token for this request. A failure here means the
	// request is never sent; callers see a token_retrieval error and
	// nothing reaches the backend with stale credentials.
	if c.sess != nil {
		token, tokenErr := c.tokens.Token(ctx, *c.sess)
		if tokenErr != nil {
			return apperrors.Wrapf(tokenErr, apperrors.ErrCodeTokenRetrieval, "%s %s: bearer token unavailable", method, path)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return apperrors.Wrapf(ctxErr, apperrors.ErrCodeCanceled, "%s %s", method, path)
		}
		return apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "%s %s: backend unreachable", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.handleAuthFailure(ctx, resp.StatusCode)
		return apperrors.FromStatus(resp.StatusCode, fmt.Sprintf("%s %s: backend rejected credentials", method, path))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := readErrorMessage(resp.Body)
		if msg == "" {
			msg = fmt.Sprintf("%s %s: backend returned %d", method, path, resp.StatusCode)
		}
		return apperrors.FromStatus(resp.StatusCode, msg)
	}

	if out != nil {
		if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
			return apperrors.Wrapf(decodeErr, apperrors.ErrCodeInternal, "decode %s %s response", method, path)
		}
	}
	return nil
}

// handleAuthFailure signs the session out exactly once. The sign-out
// callback receives a detached context so teardown survives request
// cancellation.
func (c *Client) handleAuthFailure(ctx context.Context, status int) {
	if c.sess == nil || c.signOut == nil {
		return
	}
	c.once.Do(func() {
		c.logger.Warn("backend rejected session credentials, signing out",
			"session_id", c.sess.ID,
			"status", status,
		)
		c.signOut(context.WithoutCancel(ctx), c.sess.ID)
	})
}

func readErrorMessage(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}

// get issues a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// patch issues a PATCH with a JSON body and expects a MutationResult.
func (c *Client) patch(ctx context.Context, path string, body any) error {
	var res MutationResult
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &res); err != nil {
		return err
	}
	if !res.Success {
		return apperrors.Conflict(nonEmpty(res.Message, "backend rejected the update"))
	}
	return nil
}

// delete issues a DELETE and expects a MutationResult.
func (c *Client) delete(ctx context.Context, path string) error {
	var res MutationResult
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &res); err != nil {
		return err
	}
	if !res.Success {
		return apperrors.Conflict(nonEmpty(res.Message, "backend rejected the delete"))
	}
	return nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// conflictFromResult turns a success=false mutation response into a
// Conflict error carrying the backend's message when present.
func conflictFromResult(res MutationResult, fallback string) error {
	return apperrors.Conflict(nonEmpty(res.Message, fallback))
}
