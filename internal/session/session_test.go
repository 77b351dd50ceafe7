package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path)
	if store.LoggedIn() {
		t.Error("fresh store should not be logged in")
	}

	sess := Session{Token: "tok123", UserID: "u1", Role: "customer", CartCount: 3}
	if err := store.Save(sess); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !store.LoggedIn() {
		t.Error("store should be logged in after Save")
	}
	if store.Token() != "tok123" || store.UserID() != "u1" {
		t.Errorf("token/userID = %q/%q, want tok123/u1", store.Token(), store.UserID())
	}

	// A second store over the same file picks the session up.
	reloaded := NewStore(path)
	if got := reloaded.Current(); got != sess {
		t.Errorf("reloaded session = %+v, want %+v", got, sess)
	}
}

func TestStore_SetCartCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	if err := store.Save(Session{Token: "tok", UserID: "u1"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.SetCartCount(5); err != nil {
		t.Fatalf("SetCartCount() error = %v", err)
	}
	if got := store.Current(); got.CartCount != 5 || got.UserID != "u1" {
		t.Errorf("session = %+v, want cart count 5 with user intact", got)
	}
	if NewStore(path).Current().CartCount != 5 {
		t.Error("cart count must survive a reload")
	}
}

func TestStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	if err := store.Save(Session{Token: "tok", UserID: "u1", Role: "admin"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if store.LoggedIn() || store.IsAdmin() {
		t.Error("cleared store must be logged out")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("session file should be removed, stat err = %v", err)
	}

	// Clearing an already-clear store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestStore_IsAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	if err := store.Save(Session{Token: "tok", UserID: "u1", Role: "customer"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if store.IsAdmin() {
		t.Error("customer must not be admin")
	}

	if err := store.Save(Session{Token: "tok", UserID: "u1", Role: "admin"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !store.IsAdmin() {
		t.Error("admin role must report IsAdmin")
	}
}

func TestNewStore_ToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	store := NewStore(path)
	if store.LoggedIn() {
		t.Error("corrupt session file must start an empty session")
	}
}
