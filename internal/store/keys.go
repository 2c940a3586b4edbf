package store

import "fmt"

// Key layout. Global keys hold the session, the account directory, and the
// theme; every per-account collection lives under its own namespaced key so
// switching accounts swaps collections wholesale.
const (
	KeySession   = "garden_user"
	KeyDirectory = "garden_users"
	KeyTheme     = "garden_theme"
)

// Collection key suffixes
const (
	SuffixPlants   = "myPlants"
	SuffixTasks    = "tasks"
	SuffixJournal  = "journal"
	SuffixHarvests = "harvests"
	SuffixPestLogs = "pestLogs"
	SuffixLayout   = "gardenLayout"
)

// AccountKey returns the namespaced key for one account's collection
func AccountKey(accountID int64, suffix string) string {
	return fmt.Sprintf("garden_%d_%s", accountID, suffix)
}
