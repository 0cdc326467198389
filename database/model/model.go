// Package model defines the persistent data structures of the vahanscan service.
package model

import "time"

// User is a registered account. Username and email are unique at creation and
// never change afterwards; accounts are never deleted.
type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Summary returns the fields of a user that are safe to hand to clients.
func (u *User) Summary() map[string]any {
	return map[string]any{
		"id":       u.Id,
		"username": u.Username,
		"email":    u.Email,
	}
}

// Session maps an opaque bearer token to a user for a fixed window.
// An expired or destroyed session is indistinguishable from an absent one.
type Session struct {
	Token     string    `json:"-" gorm:"primaryKey"`
	UserId    int       `json:"-" gorm:"index;not null"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-" gorm:"index"`
}

// Expired reports whether the session window has closed at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Assessment is one simulated damage-detection result. Every record has
// exactly one owner and is only reachable through owner-scoped operations.
// Records are never updated in place.
type Assessment struct {
	Id                int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId            int       `json:"userId" gorm:"index;not null"`
	DamagedPart       string    `json:"damagedPart"`
	Severity          string    `json:"severity"`
	EstimatedCost     string    `json:"estimatedCost"`
	DamageDescription string    `json:"damageDescription"`
	DamageLocation    string    `json:"damageLocation"`
	FileName          string    `json:"fileName"`
	Timestamp         time.Time `json:"timestamp"`
}
