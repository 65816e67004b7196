package htb

import (
	"context"
	"errors"
	"fmt"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/services"
	"htbnotes/internal/structures"

	json "github.com/goccy/go-json"
)

// ErrNoToken means neither the settings blob nor the config carries a
// credential.
var ErrNoToken = errors.New("no API token configured")

type AuthServiceInterface interface {
	Login(ctx context.Context, token string) (models.User, error)
	AutoLogin(ctx context.Context) (models.User, error)
	Logout() error
}

// AuthService validates tokens against the account profile endpoint
// and keeps the working one in settings.
type AuthService struct {
	api    *apiClient
	store  services.SettingsServiceInterface
	logger providers.Logger
}

func NewAuthService(conf *structures.Config, http providers.HttpProviderInterface, store services.SettingsServiceInterface, logger providers.Logger) AuthServiceInterface {
	return &AuthService{
		api:    newAPIClient(conf, http, store, logger),
		store:  store,
		logger: logger,
	}
}

// Login verifies the token by fetching the account profile, then
// stores it for later commands.
func (s *AuthService) Login(ctx context.Context, token string) (models.User, error) {
	user, err := s.fetchUser(ctx, token)
	if err != nil {
		return models.User{}, err
	}
	if err := s.store.SetToken(token); err != nil {
		return models.User{}, fmt.Errorf("saving token: %w", err)
	}
	s.logger.Infof(providers.TypeApp, "Logged in as %s", user.Name)
	return user, nil
}

// AutoLogin uses the stored credential. A rejected stored token gets
// cleared so the next attempt starts clean.
func (s *AuthService) AutoLogin(ctx context.Context) (models.User, error) {
	token := s.store.Token()
	if token == "" {
		return models.User{}, ErrNoToken
	}
	user, err := s.fetchUser(ctx, token)
	if err != nil {
		if errors.Is(err, providers.ErrAuthFailed) {
			s.logger.Warnf(providers.TypeApp, "Stored token rejected, clearing it")
			if clearErr := s.store.ClearToken(); clearErr != nil {
				s.logger.Errorf(providers.TypeApp, "Clearing token failed: %v", clearErr)
			}
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *AuthService) Logout() error {
	if err := s.store.ClearToken(); err != nil {
		return err
	}
	s.logger.Infof(providers.TypeApp, "Logged out")
	return nil
}

func (s *AuthService) fetchUser(ctx context.Context, token string) (models.User, error) {
	body, err := s.api.getWithToken(ctx, token, EndpointUserInfo, nil, nil)
	if err != nil {
		return models.User{}, err
	}
	var env models.UserEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.User{}, fmt.Errorf("decoding account profile: %w", err)
	}
	return models.ParseUser(env.Info), nil
}
