package memory

import (
	"context"
	"sync"

	"solid-example/solid/srp/compliant"
)

// UserStore map-backed user store; the default backend of the SRP example.
type UserStore struct {
	mu    sync.RWMutex
	users map[int]compliant.User
}

func NewUserStore(seed ...compliant.User) *UserStore {
	s := &UserStore{users: make(map[int]compliant.User, len(seed))}
	for _, u := range seed {
		s.users[u.UserID] = u
	}
	return s
}

func (s *UserStore) Load(ctx context.Context, userID int) (*compliant.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) Store(ctx context.Context, user *compliant.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.UserID] = *user
	return nil
}

var _ compliant.Store = (*UserStore)(nil)
