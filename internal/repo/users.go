package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kisansetu-backend/pkg/models"
)

const usersCollection = "users"

// CreateUser persists the sign-in record and returns it with its assigned id.
func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if _, err := s.collection(usersCollection).InsertOne(ctx, u); err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}
