package entity

import "dayboard/core/entity"

// User is an account row. PasswordHash never leaves the service layer.
type User struct {
	entity.BaseEntity
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Activated    bool   `db:"activated" json:"activated"`
}

func (User) TableName() string {
	return "users"
}
