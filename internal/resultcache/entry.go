package resultcache

import (
	"fmt"
	"time"

	"github.com/2beens/hrload/internal/trimp"
)

// Entry is a computed load together with the content hash of its input series.
type Entry struct {
	Hash   string       `json:"hash"`
	Result trimp.Result `json:"result"`
}

// Resolve returns prev when its hash matches, otherwise it runs compute and
// wraps the fresh result. hit reports whether compute was skipped.
func Resolve(hash string, prev *Entry, compute func() trimp.Result) (entry Entry, hit bool) {
	if prev != nil && prev.Hash != "" && prev.Hash == hash {
		return *prev, true
	}
	return Entry{Hash: hash, Result: compute()}, false
}

func DayKey(date time.Time) string {
	return "day::" + date.Format(time.DateOnly)
}

func ActivityKey(activityID string) string {
	return fmt.Sprintf("activity::%s", activityID)
}
