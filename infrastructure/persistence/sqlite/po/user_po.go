package po

import (
	"time"

	"solid-example/solid/srp/compliant"
)

type UserPO struct {
	UserID    int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserPO) TableName() string {
	return "users"
}

func FromUser(u *compliant.User) *UserPO {
	return &UserPO{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

func (po *UserPO) ToUser() *compliant.User {
	return compliant.NewUser(po.UserID, po.Name, po.Email)
}
