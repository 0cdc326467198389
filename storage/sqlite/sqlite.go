// Package sqlite implements the store contracts on top of GORM. SQLite
// serializes writers itself, so no extra locking is needed here.
package sqlite

import (
	"errors"
	"time"

	"github.com/vahanscan/vahanscan/database/model"
	"github.com/vahanscan/vahanscan/storage"

	"gorm.io/gorm"
)

// Store persists users, sessions and assessment history in SQLite.
type Store struct {
	db *gorm.DB
}

var _ storage.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(user *model.User) error {
	var count int64
	err := s.db.Model(&model.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return storage.ErrDuplicateIdentity
	}

	err = s.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent signup with the same identity.
		return storage.ErrDuplicateIdentity
	}
	return err
}

func (s *Store) FindUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(&model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) FindUserById(id int) (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(&model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Store) SaveSession(session *model.Session) error {
	return s.db.Save(session).Error
}

func (s *Store) FindSession(token string) (*model.Session, error) {
	session := &model.Session{}
	err := s.db.Model(&model.Session{}).
		Where("token = ?", token).
		First(session).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storage.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Store) DeleteSession(token string) error {
	return s.db.Where("token = ?", token).Delete(&model.Session{}).Error
}

func (s *Store) DeleteExpiredSessions(now time.Time) (int64, error) {
	res := s.db.Where("expires_at <= ?", now).Delete(&model.Session{})
	return res.RowsAffected, res.Error
}

func (s *Store) AppendAssessment(record *model.Assessment) error {
	return s.db.Create(record).Error
}

func (s *Store) ListByOwner(ownerId int) ([]*model.Assessment, error) {
	records := make([]*model.Assessment, 0)
	err := s.db.Model(&model.Assessment{}).
		Where("user_id = ?", ownerId).
		Order("timestamp desc, id desc").
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) DeleteByOwner(ownerId int, recordId int) error {
	res := s.db.Where("id = ? AND user_id = ?", recordId, ownerId).
		Delete(&model.Assessment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
