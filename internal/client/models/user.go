// Package models defines thin client-side mirrors of the LanXpert server
// resources. The client holds no authoritative state: every struct here is a
// decode target for a JSON response, nothing more.
package models

import "time"

type Plan struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	IsActive bool    `json:"is_active"`
}

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserRole is the nesting the server uses for role assignments.
type UserRole struct {
	Role Role `json:"role"`
}

type User struct {
	ID                  string     `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	PlanID              string     `json:"plan_id,omitempty"`
	Plan                *Plan      `json:"plan,omitempty"`
	Roles               []UserRole `json:"roles,omitempty"`
	NativeLanguageID    string     `json:"native_language_id,omitempty"`
	TargetLanguageID    string     `json:"target_language_id,omitempty"`
	InterfaceLanguageID string     `json:"interface_language_id,omitempty"`
	EmailVerified       bool       `json:"email_verified"`
	XP                  int        `json:"xp,omitempty"`
	StreakDays          int        `json:"streak_days,omitempty"`
	CurrentLevel        string     `json:"current_level,omitempty"`
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Role.Name == name {
			return true
		}
	}
	return false
}

// Onboarded reports whether the onboarding-mandatory profile fields are set.
func (u *User) Onboarded() bool {
	return u.NativeLanguageID != "" && u.TargetLanguageID != ""
}

// HasPaidPlan reports whether the user is on any paid plan. The server treats
// an empty plan_id as the free tier.
func (u *User) HasPaidPlan() bool {
	return u.PlanID != ""
}

// UserUpdate is the PUT /users/me payload. Nil fields are left untouched
// server-side.
type UserUpdate struct {
	Username            *string `json:"username,omitempty"`
	Email               *string `json:"email,omitempty"`
	NativeLanguageID    *string `json:"native_language_id,omitempty"`
	TargetLanguageID    *string `json:"target_language_id,omitempty"`
	InterfaceLanguageID *string `json:"interface_language_id,omitempty"`
}

// UserCreate is the POST /users/ registration payload.
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
