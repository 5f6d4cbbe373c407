package tui

import (
	"time"

	"github.com/sonikratika023-droid/livepulse-automated/internal/cache"
)

// dataMsg carries a snapshot read. local marks data served from the CSV
// override rather than the remote store.
type dataMsg struct {
	res   cache.Result
	local bool
}

// tickMsg fires the background refresh timer; the cache's TTL decides
// whether it actually fetches.
type tickMsg time.Time

// updateMsg reports an available newer release.
type updateMsg struct {
	version string
}
