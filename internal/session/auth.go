package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/khj1212k/news-recommendation-service/internal/domain"
)

// Auth owns the credential lifecycle: created on login/signup, destroyed on
// logout. The token itself stays opaque; an expired one only shows up as a
// failed request later.
type Auth struct {
	backend Backend
	tokens  TokenStore
	logger  *slog.Logger
}

func NewAuth(backend Backend, tokens TokenStore, logger *slog.Logger) *Auth {
	return &Auth{
		backend: backend,
		tokens:  tokens,
		logger:  logger.With("component", "auth"),
	}
}

func (a *Auth) Login(ctx context.Context, email, password string) error {
	token, err := a.backend.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.tokens.Set(ctx, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	a.logger.Info("logged in", "email", email)
	return nil
}

func (a *Auth) Signup(ctx context.Context, email, password string) error {
	token, err := a.backend.Signup(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.tokens.Set(ctx, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	a.logger.Info("signed up", "email", email)
	return nil
}

func (a *Auth) Logout(ctx context.Context) error {
	if err := a.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	a.logger.Info("logged out")
	return nil
}

// SavePreferences stores the user's onboarding categories and keywords.
func (a *Auth) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	return a.backend.UpdatePreferences(ctx, prefs)
}
