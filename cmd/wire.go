package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	tomlrepo "github.com/creditwise/creditwise-cli/internal/adapters/repo/toml"
	"github.com/creditwise/creditwise-cli/internal/adapters/rest"
	chainstore "github.com/creditwise/creditwise-cli/internal/adapters/secrets/chain"
	"github.com/creditwise/creditwise-cli/internal/application"
	"github.com/creditwise/creditwise-cli/internal/ports"
	"github.com/creditwise/creditwise-cli/internal/ui"
)

const (
	apiBaseURLEnv     = "CW_API_BASE_URL"
	sessionTokenEnv   = "CW_SESSION_TOKEN"
	defaultAPIBaseURL = "http://localhost:8080"
	clientConfigDir   = ".creditwise"
	secretsDirName    = "secrets"
)

type app struct {
	services *ui.Services
	sessions *application.SessionService
	auth     *application.AuthService
	scores   *application.ScoreService
	chat     *application.ChatService
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(
		map[string]string{application.SessionTokenKey: sessionTokenEnv},
		filepath.Join(homeDir, clientConfigDir, secretsDirName),
	)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	// The gateway reads the token through the store on every call so a login
	// in the same process is picked up immediately.
	token := func() string {
		value, err := secretStore.Get(context.Background(), application.SessionTokenKey)
		if err != nil {
			return ""
		}
		return value
	}

	gateway, err := rest.NewClient(envOrDefault(apiBaseURLEnv, defaultAPIBaseURL), http.DefaultClient, token)
	if err != nil {
		return nil, fmt.Errorf("wire gateway client: %w", err)
	}

	sessions := application.NewSessionService(repo, secretStore)
	auth := application.NewAuthService(gateway, sessions, ports.SystemClock{})
	scores := application.NewScoreService(gateway)
	chat := application.NewChatService(gateway, ports.SystemClock{})

	return &app{
		services: &ui.Services{
			Auth:     auth,
			Sessions: sessions,
			Scores:   scores,
			Chat:     chat,
		},
		sessions: sessions,
		auth:     auth,
		scores:   scores,
		chat:     chat,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
