// Package service implements the business operations behind the HTTP layer.
package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/vahanscan/vahanscan/database/model"
	"github.com/vahanscan/vahanscan/logger"
	"github.com/vahanscan/vahanscan/storage"
	"github.com/vahanscan/vahanscan/util/common"
	"github.com/vahanscan/vahanscan/util/crypto"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// a caller cannot probe which identities exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dummyHash keeps password verification on the same code path when the email
// is unknown, so response timing does not reveal whether an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService is the credential store: it creates accounts and verifies
// logins against the injected user store.
type UserService struct {
	store storage.UserStore
}

func NewUserService(store storage.UserStore) *UserService {
	return &UserService{store: store}
}

// CreateUser validates the fields, hashes the password and persists a new
// account. Duplicate username or email surfaces as storage.ErrDuplicateIdentity.
func (s *UserService) CreateUser(username, email, password string) (*model.User, error) {
	if len(username) < 3 {
		return nil, common.NewError("username must be at least 3 characters")
	}
	if !emailPattern.MatchString(email) {
		return nil, common.NewError("invalid email address")
	}
	if len(password) < 6 {
		return nil, common.NewError("password must be at least 6 characters")
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		logger.Error("hash password:", err)
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	logger.Infof("new user registered: %s", user.Username)
	return user, nil
}

// CheckUser verifies an email/password pair. Unknown email and wrong
// password both come back as ErrInvalidCredentials.
func (s *UserService) CheckUser(email, password string) (*model.User, error) {
	user, err := s.store.FindUserByEmail(email)
	if errors.Is(err, storage.ErrNotFound) {
		crypto.CheckPasswordHash(dummyHash, password)
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser resolves a user id, e.g. from a freshly resolved session.
func (s *UserService) GetUser(id int) (*model.User, error) {
	return s.store.FindUserById(id)
}
