package auth

import (
	"errors"
	"testing"

	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/store"
)

func openTestDirectory(t *testing.T) (*Directory, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return Open(st), st
}

func TestSignUp(t *testing.T) {
	d, _ := openTestDirectory(t)

	acct, err := d.SignUp("Maya", "maya@example.com", "hunter2", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if acct.ID == 0 {
		t.Error("SignUp: account id not assigned")
	}
	if acct.Avatar != "M" {
		t.Errorf("Avatar = %q, want M", acct.Avatar)
	}
	if acct.GardenName != "Maya's Garden" {
		t.Errorf("GardenName = %q, want default", acct.GardenName)
	}
	if acct.JoinDate == "" {
		t.Error("SignUp: join date not stamped")
	}

	// New account is signed in
	current, ok := d.Current()
	if !ok || current.ID != acct.ID {
		t.Error("SignUp: account not signed in afterwards")
	}
}

func TestSignUpCustomGardenName(t *testing.T) {
	d, _ := openTestDirectory(t)

	acct, err := d.SignUp("Ira", "ira@example.com", "pw", "Rooftop Jungle")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if acct.GardenName != "Rooftop Jungle" {
		t.Errorf("GardenName = %q, want Rooftop Jungle", acct.GardenName)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	d, _ := openTestDirectory(t)

	if _, err := d.SignUp("Maya", "maya@example.com", "pw", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	// Case-insensitive conflict
	_, err := d.SignUp("Other", "MAYA@Example.COM", "pw2", "")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("SignUp duplicate: err = %v, want ErrEmailExists", err)
	}

	if len(d.Accounts()) != 1 {
		t.Errorf("directory mutated on conflict: %d accounts", len(d.Accounts()))
	}
}

func TestSignInSignOut(t *testing.T) {
	d, st := openTestDirectory(t)

	acct, err := d.SignUp("Maya", "maya@example.com", "hunter2", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if err := d.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, ok := d.Current(); ok {
		t.Fatal("Current: still signed in after SignOut")
	}

	// Email matches case-insensitively, password exactly
	got, err := d.SignIn("MAYA@example.com", "hunter2")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if got.ID != acct.ID {
		t.Errorf("SignIn returned account %d, want %d", got.ID, acct.ID)
	}

	if _, err := d.SignIn("maya@example.com", "HUNTER2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("SignIn wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := d.SignIn("nobody@example.com", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("SignIn unknown email: err = %v, want ErrInvalidCredentials", err)
	}

	// Session survives reopen
	d2 := Open(st)
	if current, ok := d2.Current(); !ok || current.ID != acct.ID {
		t.Error("session not persisted across reopen")
	}
}

func TestUpdateProfile(t *testing.T) {
	d, st := openTestDirectory(t)

	acct, err := d.SignUp("Maya", "maya@example.com", "pw", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	name := "Maya R"
	gardenName := "Balcony Beds"
	updated, err := d.UpdateProfile(models.AccountPatch{Name: &name, GardenName: &gardenName})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if updated.Name != "Maya R" || updated.GardenName != "Balcony Beds" {
		t.Errorf("UpdateProfile = %+v", updated)
	}
	// Untouched fields survive
	if updated.Email != "maya@example.com" || updated.ID != acct.ID {
		t.Errorf("UpdateProfile clobbered fields: %+v", updated)
	}

	// Directory record rewritten, not just the session
	d2 := Open(st)
	accounts := d2.Accounts()
	if len(accounts) != 1 || accounts[0].Name != "Maya R" {
		t.Errorf("directory not updated: %+v", accounts)
	}
}

func TestUpdateProfileNoSession(t *testing.T) {
	d, _ := openTestDirectory(t)

	name := "x"
	if _, err := d.UpdateProfile(models.AccountPatch{Name: &name}); !errors.Is(err, ErrNoSession) {
		t.Errorf("UpdateProfile signed out: err = %v, want ErrNoSession", err)
	}
}
