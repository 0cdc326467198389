package session

import (
	"testing"
	"time"

	"github.com/vahanscan/vahanscan/storage/memory"
)

func TestCreateAndResolve(t *testing.T) {
	manager := NewManager(memory.NewStore(), 24*time.Hour)

	session, err := manager.Create(42)
	if err != nil {
		t.Fatal(err)
	}
	if len(session.Token) != tokenLength {
		t.Errorf("token length = %d, expected %d", len(session.Token), tokenLength)
	}
	if got := session.ExpiresAt.Sub(session.CreatedAt); got != 24*time.Hour {
		t.Errorf("session window = %v, expected 24h", got)
	}

	userId, ok, err := manager.Resolve(session.Token)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || userId != 42 {
		t.Errorf("resolve = (%d, %v), expected (42, true)", userId, ok)
	}
}

func TestTokensAreUnique(t *testing.T) {
	manager := NewManager(memory.NewStore(), time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		session, err := manager.Create(1)
		if err != nil {
			t.Fatal(err)
		}
		if seen[session.Token] {
			t.Fatalf("token %q issued twice", session.Token)
		}
		seen[session.Token] = true
	}
}

func TestResolveUnknownToken(t *testing.T) {
	manager := NewManager(memory.NewStore(), time.Hour)

	if _, ok, err := manager.Resolve("no-such-token"); err != nil || ok {
		t.Errorf("resolve unknown = (%v, %v), expected (false, nil)", ok, err)
	}
	if _, ok, err := manager.Resolve(""); err != nil || ok {
		t.Errorf("resolve empty = (%v, %v), expected (false, nil)", ok, err)
	}
}

func TestDestroy(t *testing.T) {
	manager := NewManager(memory.NewStore(), time.Hour)

	session, err := manager.Create(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := manager.Destroy(session.Token); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := manager.Resolve(session.Token); ok {
		t.Error("destroyed session still resolves")
	}

	// Destroy is idempotent.
	if err := manager.Destroy(session.Token); err != nil {
		t.Errorf("second destroy: %v", err)
	}
	if err := manager.Destroy(""); err != nil {
		t.Errorf("destroy empty token: %v", err)
	}
}

func TestExpiryIsFixedWindow(t *testing.T) {
	manager := NewManager(memory.NewStore(), time.Hour)

	now := time.Now()
	manager.now = func() time.Time { return now }

	session, err := manager.Create(1)
	if err != nil {
		t.Fatal(err)
	}

	// Just inside the window.
	manager.now = func() time.Time { return now.Add(time.Hour - time.Second) }
	if _, ok, _ := manager.Resolve(session.Token); !ok {
		t.Error("session expired early")
	}

	// Resolving does not extend the window: exactly at expiry it is gone.
	manager.now = func() time.Time { return now.Add(time.Hour) }
	if _, ok, _ := manager.Resolve(session.Token); ok {
		t.Error("session resolvable at expiresAt")
	}
}

func TestSweep(t *testing.T) {
	manager := NewManager(memory.NewStore(), time.Hour)

	now := time.Now()
	manager.now = func() time.Time { return now }

	stale, err := manager.Create(1)
	if err != nil {
		t.Fatal(err)
	}

	manager.now = func() time.Time { return now.Add(2 * time.Hour) }
	live, err := manager.Create(2)
	if err != nil {
		t.Fatal(err)
	}

	removed, err := manager.Sweep()
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("swept %d sessions, expected 1", removed)
	}
	if _, ok, _ := manager.Resolve(stale.Token); ok {
		t.Error("stale session survived sweep")
	}
	if _, ok, _ := manager.Resolve(live.Token); !ok {
		t.Error("live session was swept")
	}
}
