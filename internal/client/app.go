// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/models"
)

const (
	loggerRole = "vault-client"

	// commands annotated as offline run without config, storage or server
	annotationOffline = "offline"
)

var (
	errPasswordsDiffer = errors.New("entries do not match")
	errEmptyEmail      = errors.New("email is required")
)

// App is the `vault` command tree together with the services it drives.
type App struct {
	root      *cobra.Command
	flags     *config.StructuredConfig
	buildInfo models.AppBuildInfo
	email     string

	services *service.ClientServices
	logger   *logger.Logger
	closers  []io.Closer

	prompter  Prompter
	clipboard Clipboard
	out       io.Writer
	errOut    io.Writer
}

// Option customises an [App].
type Option func(*App)

// WithServices makes the app use services instead of wiring its own from
// configuration.
func WithServices(services *service.ClientServices) Option {
	return func(a *App) { a.services = services }
}

func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompter = p }
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) { a.out, a.errOut = out, errOut }
}

// WithArgs overrides os.Args[1:].
func WithArgs(args []string) Option {
	return func(a *App) { a.root.SetArgs(args) }
}

// NewApp builds the command tree. Nothing is connected until a command that
// needs the vault runs.
func NewApp(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		logger:    logger.Nop(),
		prompter:  newTerminalPrompter(os.Stdin, os.Stderr),
		clipboard: systemClipboard{},
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
	a.root = a.newRootCommand()

	for _, opt := range opts {
		opt(a)
	}
	a.root.SetOut(a.out)
	a.root.SetErr(a.errOut)
	return a
}

// Run executes the command selected by the arguments and releases every
// resource opened on the way.
func (a *App) Run(ctx context.Context) error {
	defer a.close()
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vault",
		Short:         "Zero-knowledge password vault client",
		Long:          "Manage vault items, export and import encrypted bundles. Records are encrypted on this machine; the server only stores ciphertext.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationOffline] == "true" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	a.flags = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().StringVarP(&a.email, "email", "e", os.Getenv("VAULT_EMAIL"), "Account email (env VAULT_EMAIL)")

	root.AddCommand(
		a.newSignupCommand(),
		a.newExportCommand(),
		a.newImportCommand(),
		a.newItemCommand(),
		a.newGenerateCommand(),
		a.newVersionCommand(),
	)
	return root
}

// setup wires the services on first use and attaches the logger to the
// command context.
func (a *App) setup(cmd *cobra.Command) error {
	if a.services == nil {
		if err := a.wire(cmd.Context()); err != nil {
			return err
		}
	}
	cmd.SetContext(a.logger.WithContext(cmd.Context()))
	return nil
}

func (a *App) wire(ctx context.Context) error {
	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, logCloser := logger.NewClientLogger(loggerRole, cfg.Log.Path, cfg.Log.Level)
	a.logger = log
	a.closers = append(a.closers, logCloser)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.GetChildLogger())
	if err != nil {
		log.Err(err).Msg("create server adapter")
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return fmt.Errorf("create local storage: %w", err)
	}
	a.closers = append(a.closers, storages)

	services, err := service.NewClientServices(service.ClientServicesDeps{
		Adapter:   serverAdapter,
		KeyChain:  crypto.NewKeyChainService(cfg.App.KDFIterations),
		Storages:  storages,
		Validator: validators.NewVaultValidator(),
		Workers:   cfg.Workers.ImportConcurrency,
		BuildInfo: a.buildInfo,
		Logger:    log,
	})
	if err != nil {
		log.Err(err).Msg("create client services")
		return fmt.Errorf("create client services: %w", err)
	}
	a.services = services

	log.Debug().Str("address", cfg.Adapter.HTTPAddress).Msg("client wired")
	return nil
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// withSession logs in, runs fn and logs out again, even when fn fails.
func (a *App) withSession(ctx context.Context, fn func(ctx context.Context) error) error {
	email, err := a.askEmail()
	if err != nil {
		return err
	}
	password, err := a.prompter.Secret("Master password: ")
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Login(ctx, email, password); err != nil {
		if errors.Is(err, service.ErrSecondFactorRequired) {
			return fmt.Errorf("%w: complete the login in the web client", err)
		}
		return err
	}
	defer a.logout(context.WithoutCancel(ctx))

	return fn(ctx)
}

func (a *App) logout(ctx context.Context) {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "App.logout").Msg("logout failed")
	}
}

func (a *App) askEmail() (string, error) {
	email := strings.TrimSpace(a.email)
	if email != "" {
		return email, nil
	}

	email, err := a.prompter.Line("Email: ")
	if err != nil {
		return "", err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errEmptyEmail
	}
	return email, nil
}

// askNewSecret reads a secret twice and insists both entries match.
func (a *App) askNewSecret(prompt, repeat string) (string, error) {
	first, err := a.prompter.Secret(prompt)
	if err != nil {
		return "", err
	}
	second, err := a.prompter.Secret(repeat)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordsDiffer
	}
	return first, nil
}
