package garden

import "github.com/verdant/gdn/internal/store"

// Collection identifies one of the six per-account collections. Mutations
// publish the collection they touched so subscribers (the notification
// center) can recompute.
type Collection string

const (
	CollectionPlants   Collection = store.SuffixPlants
	CollectionTasks    Collection = store.SuffixTasks
	CollectionJournal  Collection = store.SuffixJournal
	CollectionHarvests Collection = store.SuffixHarvests
	CollectionPestLogs Collection = store.SuffixPestLogs
	CollectionLayout   Collection = store.SuffixLayout
)

// AllCollections returns every per-account collection
func AllCollections() []Collection {
	return []Collection{
		CollectionPlants,
		CollectionTasks,
		CollectionJournal,
		CollectionHarvests,
		CollectionPestLogs,
		CollectionLayout,
	}
}

// Watched reports whether changes to this collection feed the notification
// deriver. Only tasks, plants, and pest logs do.
func (c Collection) Watched() bool {
	switch c {
	case CollectionPlants, CollectionTasks, CollectionPestLogs:
		return true
	}
	return false
}

// Key returns the store key for this collection scoped to an account
func (c Collection) Key(accountID int64) string {
	return store.AccountKey(accountID, string(c))
}
