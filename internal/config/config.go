package config

import (
	"net/url"
	"time"

	"github.com/veldtgame/multiplayer/internal/env"

	"go.uber.org/zap"
)

const (
	ServerURLEnv             = "MULTIPLAYER_SERVER_URL"
	RequestTimeoutSecondsEnv = "MULTIPLAYER_REQUEST_TIMEOUT_SECONDS"
	UsernameEnv              = "MULTIPLAYER_USERNAME"
	PasswordEnv              = "MULTIPLAYER_PASSWORD"
)

const defaultRequestTimeoutSeconds = 30

type Config struct {
	Logger *zap.Logger

	ServerURL      *url.URL
	RequestTimeout time.Duration
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	serverURL := env.MustGetURL(ServerURLEnv)
	timeoutSeconds := env.GetIntOr(RequestTimeoutSecondsEnv, defaultRequestTimeoutSeconds)

	return Config{
		Logger:         logger,
		ServerURL:      serverURL,
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}
