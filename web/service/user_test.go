package service

import (
	"errors"
	"testing"

	"github.com/vahanscan/vahanscan/storage"
	"github.com/vahanscan/vahanscan/storage/memory"
)

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"short username", "ab", "a@example.com", "secret123"},
		{"empty username", "", "a@example.com", "secret123"},
		{"missing at sign", "alice", "aexample.com", "secret123"},
		{"missing domain dot", "alice", "a@examplecom", "secret123"},
		{"email with spaces", "alice", "a @example.com", "secret123"},
		{"short password", "alice", "a@example.com", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(memory.NewStore())
			if _, err := svc.CreateUser(tt.username, tt.email, tt.password); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSignupThenLogin(t *testing.T) {
	svc := NewUserService(memory.NewStore())

	created, err := svc.CreateUser("alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	if created.Id == 0 {
		t.Fatal("id not assigned")
	}
	if created.PasswordHash == "secret123" {
		t.Fatal("password stored in the clear")
	}

	loggedIn, err := svc.CheckUser("alice@example.com", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn.Id != created.Id {
		t.Errorf("login resolved id %d, expected %d", loggedIn.Id, created.Id)
	}
}

func TestCheckUserInvalidCredentials(t *testing.T) {
	svc := NewUserService(memory.NewStore())
	if _, err := svc.CreateUser("alice", "alice@example.com", "secret123"); err != nil {
		t.Fatal(err)
	}

	// Unknown email and wrong password must be the same error kind.
	_, unknownEmail := svc.CheckUser("nobody@example.com", "secret123")
	_, wrongPassword := svc.CheckUser("alice@example.com", "wrongpass")

	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, expected ErrInvalidCredentials", unknownEmail)
	}
	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, expected ErrInvalidCredentials", wrongPassword)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	svc := NewUserService(memory.NewStore())
	if _, err := svc.CreateUser("alice", "alice@example.com", "secret123"); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.CreateUser("alice", "new@example.com", "secret123"); !errors.Is(err, storage.ErrDuplicateIdentity) {
		t.Errorf("duplicate username err = %v, expected ErrDuplicateIdentity", err)
	}
	if _, err := svc.CreateUser("newname", "alice@example.com", "secret123"); !errors.Is(err, storage.ErrDuplicateIdentity) {
		t.Errorf("duplicate email err = %v, expected ErrDuplicateIdentity", err)
	}

	// Identity matching is case-sensitive exact match.
	if _, err := svc.CreateUser("Alice", "ALICE@example.com", "secret123"); err != nil {
		t.Errorf("differently-cased identity rejected: %v", err)
	}
}
