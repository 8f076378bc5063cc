package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a lexicographically sortable ULID-based identifier. The embedded
// timestamp makes client-generated references orderable server-side without
// coordination, which matters for proof records filed out-of-band.
type ID string

// Zero is the zero value ID, only useful as a placeholder.
const Zero ID = ""

// Reference prefixes for identifiers generated client-side when the backend
// never supplied one. The prefix keeps synthesized references visually
// distinct from server-issued ones in logs and reconciliation exports.
const (
	proofPrefix       = "proof_"
	transactionPrefix = "trx_"
)

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	globalOnce sync.Once
	global     *generator
)

// generator produces ULIDs safely across goroutines from a single monotonic
// entropy source.
type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func (g *generator) newAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(t), g.entropy)
	return ID(u.String())
}

func initGlobal() {
	global = &generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// New returns a fresh ID stamped with the current UTC time.
func New() ID {
	globalOnce.Do(initGlobal)
	return global.newAt(time.Now().UTC())
}

// NewAt returns an ID stamped with the provided time. Mostly for tests.
func NewAt(t time.Time) ID {
	globalOnce.Do(initGlobal)
	return global.newAt(t.UTC())
}

// NewProofRef returns a prefixed proof-of-transfer reference.
func NewProofRef() string {
	return proofPrefix + New().String()
}

// NewTransactionRef returns a prefixed fallback transaction reference, used
// when a submit response carried no server-issued transaction identifier.
func NewTransactionRef() string {
	return transactionPrefix + New().String()
}

// Parse validates and converts a ULID string into an ID. Prefixed references
// from NewProofRef/NewTransactionRef are accepted with their prefix intact.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	if _, err := ulid.ParseStrict(stripPrefix(s)); err != nil {
		return Zero, ErrInvalid
	}

	return ID(s), nil
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == Zero }

// String returns the canonical string form.
func (id ID) String() string { return string(id) }

// Time extracts the embedded UTC timestamp, or the zero time when the ID is
// zero or malformed.
func (id ID) Time() time.Time {
	if id.IsZero() {
		return time.Time{}
	}

	u, err := ulid.ParseStrict(stripPrefix(string(id)))
	if err != nil {
		return time.Time{}
	}

	// The ULID time component is milliseconds since epoch.
	return ulid.Time(u.Time())
}

func stripPrefix(s string) string {
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		return s[i+1:]
	}
	return s
}
