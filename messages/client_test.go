package messages

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_ClientMsg_RoundTrip(t *testing.T) {
	req := require.New(t)
	msgs := []ClientMsg{
		ClientNet{Net: "freenode", Msg: JoinChan{Name: "#rust"}},
		ClientNet{Net: "freenode", Msg: ClientNetBuf{
			Buf: ChannelTarget("#rust"),
			Msg: SendMsg{Msg: "hello"},
		}},
		ClientNet{Net: "freenode", Msg: ListBufs{}},
		ClientBuf{Buf: "status", Msg: FetchLogs{Count: 50}},
		ListNets{},
		ListGlobalBufs{},
	}
	for _, msg := range msgs {
		data, err := MarshalClientMsg(msg)
		req.NoError(err)
		decoded, err := UnmarshalClientMsg(data)
		req.NoError(err)
		req.Equal(msg, decoded)
	}
}

func Test_PartChan_AbsentMsg_DistinctFromEmpty(t *testing.T) {
	req := require.New(t)
	absent, err := MarshalClientBufMsg(PartChan{Msg: nil})
	req.NoError(err)
	empty, err := MarshalClientBufMsg(PartChan{Msg: lo.ToPtr("")})
	req.NoError(err)
	req.JSONEq(`{"tag":"PartChan","msg":null}`, string(absent))
	req.JSONEq(`{"tag":"PartChan","msg":""}`, string(empty))

	decodedAbsent, err := UnmarshalClientBufMsg(absent)
	req.NoError(err)
	decodedEmpty, err := UnmarshalClientBufMsg(empty)
	req.NoError(err)
	req.NotEqual(decodedAbsent, decodedEmpty)
}
