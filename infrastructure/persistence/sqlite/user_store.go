package sqlite

import (
	"context"
	"errors"

	"solid-example/infrastructure/persistence"
	"solid-example/infrastructure/persistence/sqlite/po"
	"solid-example/solid/srp/compliant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore gorm-backed user store.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

func (s *UserStore) Load(ctx context.Context, userID int) (*compliant.User, error) {
	var userPO po.UserPO
	err := s.getDB(ctx).Where("user_id = ?", userID).First(&userPO).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return userPO.ToUser(), nil
}

// Store inserts the user or overwrites name and email of an existing row.
func (s *UserStore) Store(ctx context.Context, user *compliant.User) error {
	return s.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
	}).Create(po.FromUser(user)).Error
}

// Seed stores users in one transaction.
func (s *UserStore) Seed(ctx context.Context, users ...compliant.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := persistence.ContextWithTx(ctx, tx)
		for i := range users {
			if err := s.Store(txCtx, &users[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

var _ compliant.Store = (*UserStore)(nil)
