// Package memory provides the in-process store implementation. All three
// collections are guarded by one RWMutex each so writes serialize while
// reads may run concurrently.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/vahanscan/vahanscan/database/model"
	"github.com/vahanscan/vahanscan/storage"

	"go.uber.org/atomic"
)

// Store keeps users, sessions and assessment history in process memory.
type Store struct {
	usersMu    sync.RWMutex
	users      map[int]*model.User
	byEmail    map[string]int
	byUsername map[string]int
	userSeq    atomic.Int64

	sessionsMu sync.RWMutex
	sessions   map[string]*model.Session

	historyMu sync.RWMutex
	history   map[int]*model.Assessment
	recordSeq atomic.Int64
}

var _ storage.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:      make(map[int]*model.User),
		byEmail:    make(map[string]int),
		byUsername: make(map[string]int),
		sessions:   make(map[string]*model.Session),
		history:    make(map[int]*model.Assessment),
	}
}

func (s *Store) CreateUser(user *model.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return storage.ErrDuplicateIdentity
	}
	if _, ok := s.byUsername[user.Username]; ok {
		return storage.ErrDuplicateIdentity
	}

	user.Id = int(s.userSeq.Inc())
	stored := *user
	s.users[stored.Id] = &stored
	s.byEmail[stored.Email] = stored.Id
	s.byUsername[stored.Username] = stored.Id
	return nil
}

func (s *Store) FindUserByEmail(email string) (*model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	user := *s.users[id]
	return &user, nil
}

func (s *Store) FindUserById(id int) (*model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Store) SaveSession(session *model.Session) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	stored := *session
	s.sessions[stored.Token] = &stored
	return nil
}

func (s *Store) FindSession(token string) (*model.Session, error) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *Store) DeleteSession(token string) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *Store) DeleteExpiredSessions(now time.Time) (int64, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	var removed int64
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) AppendAssessment(record *model.Assessment) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	record.Id = int(s.recordSeq.Inc())
	stored := *record
	s.history[stored.Id] = &stored
	return nil
}

func (s *Store) ListByOwner(ownerId int) ([]*model.Assessment, error) {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()

	records := make([]*model.Assessment, 0)
	for _, record := range s.history {
		if record.UserId == ownerId {
			copied := *record
			records = append(records, &copied)
		}
	}
	// Newest first; ids break ties for records stamped in the same instant.
	sort.Slice(records, func(i, j int) bool {
		if records[i].Timestamp.Equal(records[j].Timestamp) {
			return records[i].Id > records[j].Id
		}
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

func (s *Store) DeleteByOwner(ownerId int, recordId int) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	record, ok := s.history[recordId]
	if !ok || record.UserId != ownerId {
		return storage.ErrNotFound
	}
	delete(s.history, recordId)
	return nil
}
