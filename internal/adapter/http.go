// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/go-resty/resty/v2"
)

const runIDHeader = "X-Import-Run-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	cookieName string

	mu    sync.RWMutex
	token models.Token

	logger *logger.Logger
}

// itemRequest is the body of item create and update calls.
type itemRequest struct {
	EncryptedBlob string `json:"encryptedBlob"`
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. The session lives in a cookie named adapterCfg.SessionCookie.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	cookieName := adapterCfg.SessionCookie
	if cookieName == "" {
		cookieName = config.DefaultSessionCookie
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, cookieName: cookieName, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [ServerAdapter]. It POSTs {email, password, encryptedVMK}
// to POST /api/auth/signup and captures the session cookie of the 201 answer.
// Returns an error if the request fails, the server returns a non-2xx status,
// or the answer carries no usable session.
func (h *httpServerAdapter) Signup(ctx context.Context, account models.Account) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(account).
		Post("/api/auth/signup")
	if err != nil {
		return models.Token{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := h.captureSession(resp)
	if err != nil {
		return models.Token{}, fmt.Errorf("signup session: %w", err)
	}
	return token, nil
}

// Login implements [ServerAdapter]. It POSTs {email, password} to
// POST /api/auth/login. A {requires2FA, loginToken} answer is returned as is
// with no session; otherwise the session cookie is captured and the account's
// encryptedVMK is returned.
func (h *httpServerAdapter) Login(ctx context.Context, account models.Account) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Account{Email: account.Email, Password: account.Password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	if result.Requires2FA {
		return result, nil
	}

	if _, err = h.captureSession(resp); err != nil {
		return models.LoginResult{}, fmt.Errorf("login session: %w", err)
	}
	return result, nil
}

// Me implements [ServerAdapter]. It GETs /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.AccountInfo, error) {
	var info models.AccountInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/auth/me")
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountInfo{}, err
	}

	return info, nil
}

// Logout implements [ServerAdapter]. It POSTs to /api/auth/logout and drops
// the local session even when the request fails: a stale cookie must never
// outlive a logout.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/auth/logout")

	h.forgetSession()

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// SessionToken implements [ServerAdapter]. An expired token counts as no
// session.
func (h *httpServerAdapter) SessionToken() (models.Token, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.token.SignedString == "" || h.token.Expired(time.Now()) {
		return models.Token{}, ErrNoSession
	}
	return h.token, nil
}

// ListItems implements [ServerAdapter]. It GETs /api/vault and decodes the
// array of {id, encryptedBlob, createdAt, updatedAt}.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.VaultItem, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/vault")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.VaultItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list items response: %w", err)
	}

	return items, nil
}

// CreateItem implements [ServerAdapter]. It POSTs {encryptedBlob} to
// /api/vault. This call is never retried, so one attempt creates at most one
// item. An import run id found in ctx is sent as X-Import-Run-ID.
func (h *httpServerAdapter) CreateItem(ctx context.Context, encryptedBlob string) (models.VaultItem, error) {
	var created models.VaultItem

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(itemRequest{EncryptedBlob: encryptedBlob}).
		SetResult(&created)
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		req.SetHeader(runIDHeader, runID)
	}

	resp, err := req.Post("/api/vault")
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return created, nil
}

// UpdateItem implements [ServerAdapter]. It PUTs {encryptedBlob} to
// /api/vault/{id}. Returns [ErrNotFound] or [ErrForbidden] (wrapped) when the
// item is missing or belongs to another account.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, id, encryptedBlob string) (models.VaultItem, error) {
	var updated models.VaultItem

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(itemRequest{EncryptedBlob: encryptedBlob}).
		SetResult(&updated).
		Put("/api/vault/{id}")
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return updated, nil
}

// DeleteItem implements [ServerAdapter]. It sends DELETE /api/vault/{id}.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/vault/{id}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// captureSession reads the session cookie from resp and remembers the parsed
// token. The cookie itself stays in the client's jar and is sent back on
// later requests.
func (h *httpServerAdapter) captureSession(resp *resty.Response) (models.Token, error) {
	var raw string
	for _, c := range resp.Cookies() {
		if c.Name == h.cookieName {
			raw = c.Value
		}
	}
	if raw == "" {
		return models.Token{}, ErrNoSession
	}

	token, err := utils.ParseSessionToken(raw)
	if err != nil {
		return models.Token{}, err
	}

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()

	h.logger.Debug().
		Str("func", "httpServerAdapter.captureSession").
		Str("account_id", token.Subject).
		Msg("session established")

	return token, nil
}

func (h *httpServerAdapter) forgetSession() {
	h.mu.Lock()
	h.token = models.Token{}
	h.mu.Unlock()

	jar, err := cookiejar.New(nil)
	if err != nil {
		return
	}
	h.client.SetCookieJar(jar)
}
