package compliant

import (
	"context"
	"fmt"
	"io"

	"solid-example/pkg/logger"

	"go.uber.org/zap"
)

// Store is the backing storage UserRepository delegates to.
// Load returns (nil, nil) for an unknown id.
type Store interface {
	Load(ctx context.Context, userID int) (*User, error)
	Store(ctx context.Context, user *User) error
}

// UserRepository is the only collaborator that talks to storage.
type UserRepository struct {
	out   io.Writer
	store Store
}

func NewUserRepository(out io.Writer, store Store) *UserRepository {
	return &UserRepository{out: out, store: store}
}

// GetUserByID returns (nil, nil) when no user has the id.
func (r *UserRepository) GetUserByID(ctx context.Context, userID int) (*User, error) {
	fmt.Fprintf(r.out, "Fetching user %d from database...\n", userID)

	user, err := r.store.Load(ctx, userID)
	if err != nil {
		logger.Error("failed to load user", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		logger.Debug("user not found", zap.Int("user_id", userID))
	}
	return user, nil
}

func (r *UserRepository) Save(ctx context.Context, user *User) error {
	fmt.Fprintf(r.out, "Saving user %s (%d) to database...\n", user.Name, user.UserID)

	if err := r.store.Store(ctx, user); err != nil {
		logger.Error("failed to save user", zap.Int("user_id", user.UserID), zap.Error(err))
		return err
	}

	fmt.Fprintf(r.out, "User %s saved.\n", user.Name)
	return nil
}
