package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/giftbox-cli/internal/adapters/api"
	"github.com/bnema/giftbox-cli/internal/adapters/cookies"
	tomlrepo "github.com/bnema/giftbox-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/giftbox-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/giftbox-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/giftbox-cli/internal/adapters/secrets/pass"
	"github.com/bnema/giftbox-cli/internal/adapters/session/memory"
	"github.com/bnema/giftbox-cli/internal/application"
	"github.com/bnema/giftbox-cli/internal/ports"
	"github.com/rs/zerolog"
)

type app struct {
	cfg        config
	logger     zerolog.Logger
	jar        *cookies.Jar
	client     *api.Client
	session    ports.SessionStore
	profiles   ports.ProfileRepository
	auth       *application.AuthService
	gifts      *application.GiftService
	recipients *application.RecipientService
	budget     *application.BudgetService
	guard      *application.Guard
	now        func() time.Time
}

func wireApp(ctx context.Context, cfg config, stderr io.Writer) (*app, error) {
	logger := newLogger(cfg.LogLevel, stderr)

	secrets, err := newSecretStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	jar, err := cookies.NewJar(secrets, cookies.Key(cfg.Profile), ports.SystemClock{}, logger)
	if err != nil {
		return nil, fmt.Errorf("wire cookie jar: %w", err)
	}
	if err := jar.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("saved session unavailable")
	}

	profiles, err := tomlrepo.NewRepository(cfg.viper)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	session := memory.NewStore()
	client, err := api.NewClient(api.Config{
		BaseURL:        cfg.BaseURL,
		HTTPClient:     &http.Client{Jar: jar},
		Session:        session,
		RequestTimeout: cfg.Timeout,
		RateLimit:      cfg.RateLimit,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	auth := application.NewAuthService(application.AuthServiceDeps{
		Auth:      client.Auth,
		Refresher: client,
		Users:     client.Users,
		Session:   session,
		Profiles:  profiles,
		Profile:   application.ProfileRef{Name: cfg.Profile, BaseURL: client.BaseURL().String()},
		Logger:    logger,
	})

	return &app{
		cfg:        cfg,
		logger:     logger,
		jar:        jar,
		client:     client,
		session:    session,
		profiles:   profiles,
		auth:       auth,
		gifts:      application.NewGiftService(client.Gifts, auth),
		recipients: application.NewRecipientService(client.Recipients),
		budget:     application.NewBudgetService(client.Users, session),
		guard:      application.NewGuard(auth),
		now:        time.Now,
	}, nil
}

// close persists cookie changes made during the command.
func (a *app) close(ctx context.Context) {
	if a == nil || a.jar == nil {
		return
	}
	if err := a.jar.Save(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("session cookie not saved")
	}
}

func newSecretStore(cfg config, logger zerolog.Logger) (ports.SecretStore, error) {
	switch cfg.SecretsBackend {
	case "", "auto":
		return chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir, logger)
	case "file":
		return filestore.NewStore(cfg.SecretsDir), nil
	case "pass":
		return passstore.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q (auto, file or pass)", cfg.SecretsBackend)
	}
}

func newLogger(level string, stderr io.Writer) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}
