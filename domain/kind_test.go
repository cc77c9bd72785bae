package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"bouncer-lab/errors"
)

func Test_MsgKind_PlainKinds_RoundTripAsBareStrings(t *testing.T) {
	req := require.New(t)
	kinds := map[MsgKind]string{
		PrivMsg: `"PrivMsg"`,
		Notice:  `"Notice"`,
		Action:  `"Action"`,
		Status:  `"Status"`,
	}
	for kind, wire := range kinds {
		data, err := json.Marshal(kind)
		req.NoError(err)
		req.Equal(wire, string(data))

		var decoded MsgKind
		req.NoError(json.Unmarshal(data, &decoded))
		req.Equal(kind, decoded)
	}
}

func Test_MsgKind_Response_RoundTripsAtBoundaries(t *testing.T) {
	req := require.New(t)
	for _, code := range []uint16{0, 377, 65535} {
		kind := Response(code)
		data, err := json.Marshal(kind)
		req.NoError(err)

		var decoded MsgKind
		req.NoError(json.Unmarshal(data, &decoded))
		req.Equal(kind, decoded)

		got, ok := decoded.Code()
		req.True(ok)
		req.Equal(code, got)
	}
}

func Test_MsgKind_Response_WireShape(t *testing.T) {
	data, err := json.Marshal(Response(401))
	require.NoError(t, err)
	require.JSONEq(t, `{"tag":"Response","code":401}`, string(data))
}

func Test_MsgKind_Unmarshal_Rejects(t *testing.T) {
	cases := []string{
		`"Bogus"`,
		// A bare "Response" has nowhere to put the code.
		`"Response"`,
		`{"tag":"PrivMsg","code":1}`,
	}
	for _, wire := range cases {
		var kind MsgKind
		err := json.Unmarshal([]byte(wire), &kind)
		require.ErrorIs(t, err, errors.ErrUnknownMsgKind, wire)
	}
}

func Test_MsgKind_Code_FalseForPlainKinds(t *testing.T) {
	_, ok := PrivMsg.Code()
	require.False(t, ok)
}

func Test_MsgKind_ZeroValue_DoesNotMarshal(t *testing.T) {
	_, err := json.Marshal(MsgKind{})
	require.ErrorIs(t, err, errors.ErrUnknownMsgKind)
}
