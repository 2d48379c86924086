// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-zk-vault/internal/mock"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakePrompter отдаёт заранее заданные ответы по очереди.
type fakePrompter struct {
	answers []string
	prompts []string
}

func (p *fakePrompter) next(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", errors.New("unexpected prompt: " + prompt)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *fakePrompter) Secret(prompt string) (string, error) { return p.next(prompt) }
func (p *fakePrompter) Line(prompt string) (string, error)   { return p.next(prompt) }

type fakeClipboard struct {
	content string
	writes  []string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.content = text
	c.writes = append(c.writes, text)
	return nil
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.content, nil }

type testApp struct {
	app       *App
	out       *bytes.Buffer
	prompter  *fakePrompter
	clipboard *fakeClipboard
	auth      *mock.MockClientAuthService
	vault     *mock.MockClientVaultService
	transfer  *mock.MockClientTransferService
}

func newTestApp(t *testing.T, ctrl *gomock.Controller, args []string, answers ...string) *testApp {
	t.Helper()
	ta := &testApp{
		out:       &bytes.Buffer{},
		prompter:  &fakePrompter{answers: answers},
		clipboard: &fakeClipboard{},
		auth:      mock.NewMockClientAuthService(ctrl),
		vault:     mock.NewMockClientVaultService(ctrl),
		transfer:  mock.NewMockClientTransferService(ctrl),
	}
	ta.app = NewApp(
		models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"),
		WithServices(&service.ClientServices{
			AuthService:     ta.auth,
			VaultService:    ta.vault,
			TransferService: ta.transfer,
		}),
		WithPrompter(ta.prompter),
		WithClipboard(ta.clipboard),
		WithOutput(ta.out, ta.out),
		WithArgs(args),
	)
	return ta
}

// expectSession - вход и выход вокруг команды
func (ta *testApp) expectSession(email, password string) {
	ta.auth.EXPECT().Login(gomock.Any(), email, password).Return(nil)
	ta.auth.EXPECT().Logout(gomock.Any()).Return(nil)
}

// ── version / generate ───────────────────────────────────────────────────────

func TestApp_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"version"})

	require.NoError(t, ta.app.Run(context.Background()))
	assert.Contains(t, ta.out.String(), "1.2.3")
	assert.Contains(t, ta.out.String(), "abc123")
}

func TestApp_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"generate", "--length", "12", "--no-symbols"})

	require.NoError(t, ta.app.Run(context.Background()))
	pwd := bytes.TrimSpace(ta.out.Bytes())
	assert.Len(t, pwd, 12)
}

func TestApp_GenerateCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"generate", "--copy", "--clear-after", "0"})

	require.NoError(t, ta.app.Run(context.Background()))
	require.Len(t, ta.clipboard.writes, 1)
	assert.Len(t, ta.clipboard.content, 20)
	assert.NotContains(t, ta.out.String(), ta.clipboard.content)
}

func TestApp_GenerateInvalidLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"generate", "--length", "2"})

	assert.Error(t, ta.app.Run(context.Background()))
}

// ── signup ───────────────────────────────────────────────────────────────────

func TestApp_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"signup"}, "alice@example.com", "correct horse", "correct horse")

	ta.auth.EXPECT().Signup(gomock.Any(), "alice@example.com", "correct horse").Return(nil)
	ta.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, ta.app.Run(context.Background()))
	assert.Contains(t, ta.out.String(), "Account created for alice@example.com")
}

func TestApp_Signup_PasswordsDiffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"signup", "-e", "alice@example.com"}, "correct horse", "correct hose")

	err := ta.app.Run(context.Background())
	assert.ErrorIs(t, err, errPasswordsDiffer)
}

// ── session handling ─────────────────────────────────────────────────────────

func TestApp_SecondFactorRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"item", "list", "-e", "alice@example.com"}, "pw")

	ta.auth.EXPECT().Login(gomock.Any(), "alice@example.com", "pw").Return(service.ErrSecondFactorRequired)

	err := ta.app.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrSecondFactorRequired)
}

func TestApp_LogoutAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ta := newTestApp(t, ctrl, []string{"item", "rm", "i1", "-e", "alice@example.com"}, "pw")

	ta.expectSession("alice@example.com", "pw")
	ta.vault.EXPECT().Delete(gomock.Any(), "i1").Return(service.ErrItemNotFound)

	err := ta.app.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrItemNotFound)
}

func TestRenderError(t *testing.T) {
	assert.Contains(t, RenderError(errors.New("boom")), "boom")
}
