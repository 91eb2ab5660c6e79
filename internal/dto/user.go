package dto

import (
	"time"

	dom "github.com/mmyatt91/message.ly/internal/domain"
)

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /register.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=60"`
	Password  string `json:"password" binding:"required,min=1"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// TokenResponse is returned by login and register.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserSummaryResponse is the public profile shape.
type UserSummaryResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserResponse is the full profile shape. The password hash has no field
// here, so it can never be serialized.
type UserResponse struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UsersEnvelope struct {
	Users []UserSummaryResponse `json:"users"`
}

func UserToResponse(u dom.User) UserResponse {
	return UserResponse{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func SummaryToResponse(u dom.UserSummary) UserSummaryResponse {
	return UserSummaryResponse{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

func SummariesToResponses(list []dom.UserSummary) []UserSummaryResponse {
	out := make([]UserSummaryResponse, len(list))
	for i := range list {
		out[i] = SummaryToResponse(list[i])
	}
	return out
}
