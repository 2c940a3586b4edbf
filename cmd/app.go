package cmd

import (
	"fmt"

	"github.com/verdant/gdn/internal/auth"
	"github.com/verdant/gdn/internal/garden"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/notify"
	"github.com/verdant/gdn/internal/store"
)

// app wires the store, account directory, garden state, and notification
// center together for one command invocation. The notification center is
// subscribed to the watched collections so any mutation recomputes the feed
// before the command renders it.
type app struct {
	store  *store.Store
	dir    *auth.Directory
	state  *garden.State
	center *notify.Center
}

// openApp opens the store and loads the signed-in account's garden, if any
func openApp() (*app, error) {
	st, err := store.Open(getBaseDir())
	if err != nil {
		return nil, err
	}

	a := &app{
		store:  st,
		dir:    auth.Open(st),
		state:  garden.Open(st),
		center: notify.NewCenter(),
	}

	a.state.Subscribe(func(c garden.Collection) {
		if c.Watched() {
			a.center.Recompute(a.state.Tasks(), a.state.Plants(), a.state.PestLogs())
		}
	})

	if acct, ok := a.dir.Current(); ok {
		a.state.Load(acct.ID)
		a.center.Recompute(a.state.Tasks(), a.state.Plants(), a.state.PestLogs())
	}

	return a, nil
}

// Close releases the store
func (a *app) Close() {
	a.store.Close()
}

// requireAccount returns the signed-in account or a sign-in hint error
func (a *app) requireAccount() (models.Account, error) {
	acct, ok := a.dir.Current()
	if !ok {
		return models.Account{}, fmt.Errorf("not signed in: run 'gdn signin' or 'gdn signup' first")
	}
	return acct, nil
}
