// Package session implements the session manager: an explicit service that
// maps opaque bearer tokens to authenticated users, injected into handlers
// instead of living in ambient middleware state.
package session

import (
	"errors"
	"time"

	"github.com/vahanscan/vahanscan/database/model"
	"github.com/vahanscan/vahanscan/storage"
	"github.com/vahanscan/vahanscan/util/random"
)

// tokenLength is the number of alphanumeric runes per token. 32 runes over a
// 62-symbol alphabet are about 190 bits of entropy.
const tokenLength = 32

// Manager issues, resolves and destroys login sessions. Sessions live for a
// fixed window from creation; there is no sliding expiry.
type Manager struct {
	store  storage.SessionStore
	maxAge time.Duration
	now    func() time.Time
}

func NewManager(store storage.SessionStore, maxAge time.Duration) *Manager {
	return &Manager{store: store, maxAge: maxAge, now: time.Now}
}

// Create issues a fresh unguessable token bound to the given user.
func (m *Manager) Create(userId int) (*model.Session, error) {
	now := m.now()
	session := &model.Session{
		Token:     random.Seq(tokenLength),
		UserId:    userId,
		CreatedAt: now,
		ExpiresAt: now.Add(m.maxAge),
	}
	if err := m.store.SaveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve returns the user id behind a token. Absent, destroyed and expired
// tokens are all reported the same way: ok == false.
func (m *Manager) Resolve(token string) (userId int, ok bool, err error) {
	if token == "" {
		return 0, false, nil
	}
	session, err := m.store.FindSession(token)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	if session.Expired(m.now()) {
		return 0, false, nil
	}
	return session.UserId, true, nil
}

// Destroy removes a session. Destroying an absent token is not an error.
func (m *Manager) Destroy(token string) error {
	if token == "" {
		return nil
	}
	return m.store.DeleteSession(token)
}

// Sweep prunes sessions whose window has closed. Expired sessions already
// resolve as absent, so this only keeps the table bounded.
func (m *Manager) Sweep() (int64, error) {
	return m.store.DeleteExpiredSessions(m.now())
}
