package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"kisansetu-backend/pkg/models"
)

// SignIn records username/email pairs. This is identity recording only; no
// credential is ever checked.
type SignIn struct {
	Gateway Gateway
	Log     zerolog.Logger
}

// Record stores the sign-in when the store is reachable. The returned flag
// reports persistence; a demo-mode user carries no id and is never saved.
func (s *SignIn) Record(ctx context.Context, username, email string) (models.User, bool, error) {
	if username == "" {
		return models.User{}, false, ErrUsernameRequired
	}

	if !s.Gateway.Connected(ctx) {
		s.Log.Info().Str("username", username).Msg("store not connected, returning mock sign-in")
		return models.User{Username: username, Email: email, CreatedAt: time.Now()}, false, nil
	}

	user, err := s.Gateway.CreateUser(ctx, models.User{Username: username, Email: email})
	if err != nil {
		return models.User{}, false, err
	}
	s.Log.Info().Str("username", user.Username).Msg("sign-in recorded")
	return user, true, nil
}
