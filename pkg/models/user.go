package models

import "time"

type User struct {
	ID              int        `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Email           string     `json:"email" db:"email"`
	Role            string     `json:"role" db:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at" db:"email_verified_at"`
}

func (u *User) IsVerified() bool {
	return u.EmailVerifiedAt != nil
}
