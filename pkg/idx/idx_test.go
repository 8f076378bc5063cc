package idx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ayhero/inpayos-checkout/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	t.Parallel()

	id := idx.New()
	require.NotEmpty(t, id.String())
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "   ", "not-a-ulid", "proof_short"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
	}
}

func TestPrefixedRefs(t *testing.T) {
	t.Parallel()

	proof := idx.NewProofRef()
	require.True(t, strings.HasPrefix(proof, "proof_"))

	trx := idx.NewTransactionRef()
	require.True(t, strings.HasPrefix(trx, "trx_"))

	// Prefixed refs stay parseable so reconciliation tooling can validate them
	_, err := idx.Parse(proof)
	require.NoError(t, err)
	_, err = idx.Parse(trx)
	require.NoError(t, err)
}

func TestTimeExtraction(t *testing.T) {
	t.Parallel()

	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)
	require.WithinDuration(t, tm, id.Time(), time.Millisecond)
}
