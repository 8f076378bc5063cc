package checkoutsdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelopeDecoding(t *testing.T) {
	t.Parallel()

	var env envelope
	err := json.Unmarshal(
		[]byte(`{"code":"0000","msg":"success","data":{"checkoutId":"co-1"}}`),
		&env,
	)
	require.NoError(t, err)
	require.True(t, env.ok())
	require.JSONEq(t, `{"checkoutId":"co-1"}`, string(env.Data))
}

func TestEnvelopeErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		want error
	}{
		{codeSessionNotFound, ErrSessionNotFound},
		{codeSessionExpired, ErrSessionExpired},
		{codeMethodRejected, ErrMethodRejected},
	}

	for _, tc := range cases {
		env := envelope{Code: tc.code, Msg: "detail"}
		err := env.asError()
		require.ErrorIs(t, err, tc.want)
		require.Contains(t, err.Error(), "detail")
	}

	// Unknown codes keep their raw envelope
	env := envelope{Code: "9999", Msg: "mystery"}
	var berr *BackendError
	require.ErrorAs(t, env.asError(), &berr)
	require.Equal(t, "9999", berr.Code)
	require.Equal(t, "mystery", berr.Msg)
}
