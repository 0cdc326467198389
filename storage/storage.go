// Package storage defines the store contracts shared by the in-memory and
// SQLite implementations. Handlers and services depend only on these
// interfaces, never on a concrete backend.
package storage

import (
	"errors"
	"time"

	"github.com/vahanscan/vahanscan/database/model"
)

var (
	// ErrNotFound covers both a missing record and a record owned by a
	// different user; callers must not be able to tell them apart.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateIdentity is returned when a username or email is taken.
	ErrDuplicateIdentity = errors.New("username or email already exists")
)

// UserStore holds registered accounts.
type UserStore interface {
	// CreateUser persists a new user and assigns its id. Returns
	// ErrDuplicateIdentity if username or email is already present.
	CreateUser(user *model.User) error
	// FindUserByEmail looks a user up by exact email match.
	FindUserByEmail(email string) (*model.User, error)
	// FindUserById resolves a user id.
	FindUserById(id int) (*model.User, error)
}

// SessionStore maps opaque tokens to sessions.
type SessionStore interface {
	SaveSession(session *model.Session) error
	// FindSession returns ErrNotFound for absent tokens. Expiry is judged
	// by the caller; the store only persists.
	FindSession(token string) (*model.Session, error)
	// DeleteSession is idempotent; deleting an absent token is not an error.
	DeleteSession(token string) error
	// DeleteExpiredSessions prunes sessions whose window closed before now.
	DeleteExpiredSessions(now time.Time) (int64, error)
}

// HistoryStore is the append-only-by-user collection of past assessments.
type HistoryStore interface {
	// AppendAssessment persists a record and assigns a store-wide unique id.
	AppendAssessment(record *model.Assessment) error
	// ListByOwner returns a snapshot of the owner's records, newest first.
	ListByOwner(ownerId int) ([]*model.Assessment, error)
	// DeleteByOwner removes the owner's record with the given id. A record
	// owned by someone else is reported as ErrNotFound, exactly like a
	// nonexistent id.
	DeleteByOwner(ownerId int, recordId int) error
}

// Store bundles all three collections behind one handle.
type Store interface {
	UserStore
	SessionStore
	HistoryStore
}
