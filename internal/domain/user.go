package domain

import "time"

// User is the full user record. PasswordHash never leaves the service layer.
type User struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	JoinAt       time.Time
	LastLoginAt  *time.Time
}

// UserSummary is the public profile shape used in listings and message joins.
type UserSummary struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
}

func (u User) Summary() UserSummary {
	return UserSummary{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}
