package messages

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"bouncer-lab/errors"
)

func Test_BufTarget_RoundTrip(t *testing.T) {
	req := require.New(t)
	targets := []BufTarget{
		ChannelTarget("#rust"),
		PrivateTarget("alice"),
		NetworkTarget(),
	}
	for _, target := range targets {
		data, err := json.Marshal(target)
		req.NoError(err)

		var decoded BufTarget
		req.NoError(json.Unmarshal(data, &decoded))
		req.Equal(target, decoded)
	}
}

func TestBufTarget_Name(t *testing.T) {
	require.Equal(t, "#rust", ChannelTarget("#rust").Name())
	require.Equal(t, "alice", PrivateTarget("alice").Name())
	require.Equal(t, "*network*", NetworkTarget().Name())
}

func TestBufTarget_UsableAsMapKey(t *testing.T) {
	topics := map[BufTarget]string{
		ChannelTarget("#rust"): "all things rust",
		NetworkTarget():        "",
	}
	require.Equal(t, "all things rust", topics[ChannelTarget("#rust")])
	require.NotEqual(t, ChannelTarget("alice"), PrivateTarget("alice"))
}

func Test_BufTarget_Unmarshal_Rejects(t *testing.T) {
	var target BufTarget
	err := json.Unmarshal([]byte(`{"tag":"Query","name":"alice"}`), &target)
	require.ErrorIs(t, err, errors.ErrUnknownTag)

	err = json.Unmarshal([]byte(`{"name":"alice"}`), &target)
	require.ErrorIs(t, err, errors.ErrMissingTag)
}

func Test_BufInfo_RoundTrip(t *testing.T) {
	req := require.New(t)
	info := NetInfo{
		Name: "freenode",
		Buffers: []BufInfo{
			{ID: ChannelTarget("#rust")},
			{ID: NetworkTarget()},
		},
	}
	data, err := json.Marshal(info)
	req.NoError(err)

	var decoded NetInfo
	req.NoError(json.Unmarshal(data, &decoded))
	req.Equal(info, decoded)
	req.Equal("#rust", decoded.Buffers[0].Name())
}
