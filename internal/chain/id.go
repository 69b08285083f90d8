package chain

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid"
)

// Lists may be created from several goroutines even though a single
// list is not shared, so the entropy source needs its own lock.
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

func newID() ulid.ULID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}
