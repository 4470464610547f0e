// Package idgen produces unique string identifiers for new records.
//
// IDs combine the current time in epoch milliseconds with a short random
// base-36 suffix. Collisions within a single-user local application are
// not a practical concern, so no formal bound is enforced.
package idgen

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	base36    = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLen = 7
)

// New returns an identifier of the form "<epoch-millis>_<7 base-36 chars>".
func New() string {
	var suffix [suffixLen]byte
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix[:])
}
