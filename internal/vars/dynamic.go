package vars

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Dynamics generates values for $-prefixed placeholder names. Each reference
// produces a fresh value; nothing is cached between expansions.
type Dynamics struct {
	now func() time.Time
}

func NewDynamics() *Dynamics {
	return &Dynamics{now: time.Now}
}

func (d *Dynamics) Resolve(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "$uuid", "$guid":
		return uuid.NewString(), true
	case "$timestamp":
		return fmt.Sprintf("%d", d.now().Unix()), true
	case "$timestampiso8601":
		return d.now().UTC().Format(time.RFC3339), true
	case "$randomint":
		n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
		if err != nil {
			return "", false
		}
		return n.String(), true
	default:
		return "", false
	}
}

func (d *Dynamics) Label() string {
	return "dynamic"
}
