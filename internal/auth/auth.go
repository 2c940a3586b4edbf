// Package auth manages the account directory and the current session.
// Credentials are compared in plaintext against locally stored records;
// there is deliberately no hashing, rate limiting, or lockout here.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/store"
)

var (
	// ErrEmailExists is returned by SignUp when the email is already registered
	ErrEmailExists = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned by SignIn on any email/password mismatch
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession is returned by operations that require a signed-in account
	ErrNoSession = errors.New("not signed in")
)

// Directory holds the registered accounts and the current session, mirrored
// to the store on every change. A corrupt directory degrades to empty and a
// corrupt session to signed-out; neither is reported.
type Directory struct {
	store    *store.Store
	accounts []models.Account
	current  *models.Account
}

// Open loads the directory and session from the store
func Open(st *store.Store) *Directory {
	d := &Directory{store: st}

	var accounts []models.Account
	if st.GetJSON(store.KeyDirectory, &accounts) {
		d.accounts = accounts
	}

	var current models.Account
	if st.GetJSON(store.KeySession, &current) {
		d.current = &current
	}

	return d
}

// Current returns the signed-in account, if any
func (d *Directory) Current() (models.Account, bool) {
	if d.current == nil {
		return models.Account{}, false
	}
	return *d.current, true
}

// Accounts returns a copy of the registered accounts
func (d *Directory) Accounts() []models.Account {
	out := make([]models.Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// SignUp registers a new account and signs it in. Email uniqueness is
// enforced case-insensitively; the directory is untouched on conflict.
func (d *Directory) SignUp(name, email, password, gardenName string) (models.Account, error) {
	for _, a := range d.accounts {
		if strings.EqualFold(a.Email, email) {
			return models.Account{}, ErrEmailExists
		}
	}

	if gardenName == "" {
		gardenName = fmt.Sprintf("%s's Garden", name)
	}

	account := models.Account{
		ID:         models.NewID(),
		Name:       name,
		Email:      email,
		Password:   password,
		Avatar:     models.AvatarFor(name),
		JoinDate:   models.FormatDate(time.Now()),
		GardenName: gardenName,
	}

	d.accounts = append(d.accounts, account)
	d.current = &account

	if err := d.saveDirectory(); err != nil {
		return models.Account{}, err
	}
	if err := d.saveSession(); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// SignIn matches email (case-insensitive) and password (exact) against a
// single directory record and makes it the current session.
func (d *Directory) SignIn(email, password string) (models.Account, error) {
	for _, a := range d.accounts {
		if strings.EqualFold(a.Email, email) && a.Password == password {
			account := a
			d.current = &account
			if err := d.saveSession(); err != nil {
				return models.Account{}, err
			}
			return account, nil
		}
	}
	return models.Account{}, ErrInvalidCredentials
}

// SignOut clears the current session. The directory is untouched.
func (d *Directory) SignOut() error {
	d.current = nil
	return d.store.Delete(store.KeySession)
}

// UpdateProfile merges the patch into the current account, writes the
// merged record back into the directory, and refreshes the session.
func (d *Directory) UpdateProfile(patch models.AccountPatch) (models.Account, error) {
	if d.current == nil {
		return models.Account{}, ErrNoSession
	}

	updated := *d.current
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Avatar != nil {
		updated.Avatar = *patch.Avatar
	}
	if patch.GardenName != nil {
		updated.GardenName = *patch.GardenName
	}

	for i, a := range d.accounts {
		if a.ID == updated.ID {
			d.accounts[i] = updated
		}
	}
	d.current = &updated

	if err := d.saveDirectory(); err != nil {
		return models.Account{}, err
	}
	if err := d.saveSession(); err != nil {
		return models.Account{}, err
	}
	return updated, nil
}

func (d *Directory) saveDirectory() error {
	return d.store.SetJSON(store.KeyDirectory, d.accounts)
}

func (d *Directory) saveSession() error {
	if d.current == nil {
		return d.store.Delete(store.KeySession)
	}
	return d.store.SetJSON(store.KeySession, d.current)
}
