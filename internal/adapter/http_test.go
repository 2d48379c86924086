// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccountID = "65f1c0ffee0000000000abcd"

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// setSessionCookie выставляет cookie сессии так же, как это делает сервер
func setSessionCookie(t *testing.T, w http.ResponseWriter) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   testAccountID,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	http.SetCookie(w, &http.Cookie{Name: config.DefaultSessionCookie, Value: signed, Path: "/", HttpOnly: true})
	return signed
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── Constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds scheme", raw: "localhost:4000", want: "http://localhost:4000"},
		{name: "trims slash", raw: "https://vault.example.com/", want: "https://vault.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "pw", body["password"])
		assert.Equal(t, "s:i:c", body["encryptedVMK"])

		setSessionCookie(t, w)
		writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Signup(context.Background(), models.Account{Email: "alice@example.com", Password: "pw", EncryptedVMK: "s:i:c"})

	require.NoError(t, err)
	assert.Equal(t, testAccountID, token.Subject)

	stored, err := a.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, token.SignedString, stored.SignedString)
}

func TestSignup_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "user_exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.Account{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "user_exists", apiErr.Code)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}

func TestSignup_NoCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.Account{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSession)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasVMK := body["encryptedVMK"]
		assert.False(t, hasVMK, "login must not send encryptedVMK")

		setSessionCookie(t, w)
		writeJSON(w, http.StatusOK, models.LoginResult{EncryptedVMK: "s:i:c"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Account{Email: "alice@example.com", Password: "pw", EncryptedVMK: "x"})

	require.NoError(t, err)
	assert.Equal(t, "s:i:c", got.EncryptedVMK)
	assert.False(t, got.Requires2FA)

	token, err := a.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, testAccountID, token.Subject)
}

func TestLogin_Requires2FA(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.LoginResult{Requires2FA: true, LoginToken: "short-lived"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Account{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, got.Requires2FA)
	assert.Equal(t, "short-lived", got.LoginToken)

	_, err = a.SessionToken()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Account{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Me / Logout ──────────────────────────────────────────────────────────────

func TestMe_SendsSessionCookie(t *testing.T) {
	var issued string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			issued = setSessionCookie(t, w)
			writeJSON(w, http.StatusOK, models.LoginResult{EncryptedVMK: "s:i:c"})
		case "/api/auth/me":
			c, err := r.Cookie(config.DefaultSessionCookie)
			if err != nil || c.Value != issued {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
				return
			}
			writeJSON(w, http.StatusOK, models.AccountInfo{EncryptedVMK: "s:i:c"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Login(context.Background(), models.Account{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	info, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s:i:c", info.EncryptedVMK)
}

func TestLogout_ForgetsSessionEvenOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			setSessionCookie(t, w)
			writeJSON(w, http.StatusOK, models.LoginResult{EncryptedVMK: "s:i:c"})
		case "/api/auth/logout":
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
		case "/api/auth/me":
			if _, err := r.Cookie(config.DefaultSessionCookie); err == nil {
				writeJSON(w, http.StatusOK, models.AccountInfo{EncryptedVMK: "s:i:c"})
				return
			}
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Account{Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)

	err = a.Logout(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)

	_, err = a.SessionToken()
	assert.ErrorIs(t, err, ErrNoSession)

	// cookie must not be sent after logout
	_, err = a.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Items ────────────────────────────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/vault", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.VaultItem{
			{ID: "a", EncryptedBlob: "iv:ct", CreatedAt: &created, UpdatedAt: &created},
			{ID: "b", EncryptedBlob: "iv2:ct2"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.ListItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "iv:ct", items[0].EncryptedBlob)
	require.NotNil(t, items[0].CreatedAt)
	assert.True(t, created.Equal(*items[0].CreatedAt))
	assert.Nil(t, items[1].CreatedAt)
}

func TestListItems_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListItems(context.Background())
	require.Error(t, err)
}

func TestListItems_RetriedOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
			return
		}
		writeJSON(w, http.StatusOK, []models.VaultItem{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.ListItems(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCreateItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/vault", r.URL.Path)

		var body itemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, models.VaultItem{ID: "new", EncryptedBlob: body.EncryptedBlob})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	item, err := a.CreateItem(context.Background(), "iv:ct")

	require.NoError(t, err)
	assert.Equal(t, "new", item.ID)
	assert.Equal(t, "iv:ct", item.EncryptedBlob)
}

func TestCreateItem_SendsRunID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "run-1", r.Header.Get(runIDHeader))
		writeJSON(w, http.StatusCreated, models.VaultItem{ID: "new"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateItem(utils.WithRunID(context.Background(), "run-1"), "iv:ct")

	require.NoError(t, err)
}

func TestCreateItem_NotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateItem(context.Background(), "iv:ct")

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUpdateItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/vault/abc", r.URL.Path)
		writeJSON(w, http.StatusOK, models.VaultItem{ID: "abc", EncryptedBlob: "iv:new"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	item, err := a.UpdateItem(context.Background(), "abc", "iv:new")

	require.NoError(t, err)
	assert.Equal(t, "iv:new", item.EncryptedBlob)
}

func TestUpdateItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		code    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, code: "not_found", wantErr: ErrNotFound},
		{name: "forbidden", status: http.StatusForbidden, code: "forbidden", wantErr: ErrForbidden},
		{name: "missing blob", status: http.StatusBadRequest, code: "missing_encryptedBlob", wantErr: ErrBadRequest},
		{name: "teapot", status: http.StatusTeapot, code: "", wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, map[string]string{"error": tt.code})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.UpdateItem(context.Background(), "abc", "iv:new")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/api/vault/gone" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.DeleteItem(context.Background(), "abc"))
	assert.ErrorIs(t, a.DeleteItem(context.Background(), "gone"), ErrNotFound)
}

// ── errorCode ────────────────────────────────────────────────────────────────

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "user_exists", errorCode([]byte(`{"error":"user_exists"}`)))
	assert.Equal(t, "plain text", errorCode([]byte("  plain text\n")))
	assert.Equal(t, "", errorCode(nil))
}

func TestNewAPIError_StatusSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		err := NewAPIError(tt.status, "code")
		assert.True(t, errors.Is(err, tt.want), "status %d", tt.status)
		assert.Equal(t, tt.status, err.StatusCode)
		assert.Contains(t, err.Error(), "code")
	}
}

func TestSessionToken_Expired(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:4000")

	_, err := a.SessionToken()
	assert.True(t, errors.Is(err, ErrNoSession))

	past := time.Now().Add(-time.Minute)
	a.token = models.Token{SignedString: "jwt", Subject: testAccountID, ExpiresAt: &past}
	_, err = a.SessionToken()
	assert.True(t, errors.Is(err, ErrNoSession))

	future := time.Now().Add(time.Hour)
	a.token.ExpiresAt = &future
	token, err := a.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, testAccountID, token.Subject)
}
