package domain

import "time"

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNo      string    `json:"phone_no"`
	Organization string    `json:"organization"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
