package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"bouncer-lab/errors"
)

func Test_LineData_RoundTrip_EveryVariant(t *testing.T) {
	req := require.New(t)
	alice := User{Nick: "alice", Ident: "a", Host: "host.example"}
	variants := []LineData{
		Message{Kind: PrivMsg, From: "alice", Msg: "hello"},
		Message{Kind: Response(372), From: "irc.example.net", Msg: "- motd line"},
		Topic{By: lo.ToPtr("alice"), Topic: "welcome"},
		Topic{By: nil, Topic: "welcome"},
		Join{User: alice},
		Part{User: alice, Reason: ""},
		Kick{By: alice, User: "bob", Reason: "flooding"},
		Quit{User: alice, Msg: lo.ToPtr("bye")},
		Quit{User: alice, Msg: nil},
		NickChange{User: alice, New: "alice_away"},
	}
	for _, variant := range variants {
		data, err := MarshalLineData(variant)
		req.NoError(err)
		decoded, err := UnmarshalLineData(data)
		req.NoError(err)
		req.Equal(variant, decoded)
	}
}

func Test_LineData_TagMatchesVariantName(t *testing.T) {
	req := require.New(t)
	tags := map[string]LineData{
		"Message": Message{Kind: PrivMsg},
		"Topic":   Topic{},
		"Join":    Join{},
		"Part":    Part{},
		"Kick":    Kick{},
		"Quit":    Quit{},
		"Nick":    NickChange{},
	}
	for tag, variant := range tags {
		req.Equal(tag, Tag(variant))

		data, err := MarshalLineData(variant)
		req.NoError(err)
		var probe struct {
			Tag string `json:"tag"`
		}
		req.NoError(json.Unmarshal(data, &probe))
		req.Equal(tag, probe.Tag)
	}
}

func Test_Topic_AbsentBy_DistinctFromEmpty(t *testing.T) {
	req := require.New(t)
	absent := Topic{By: nil, Topic: "welcome"}
	empty := Topic{By: lo.ToPtr(""), Topic: "welcome"}

	absentJSON, err := MarshalLineData(absent)
	req.NoError(err)
	emptyJSON, err := MarshalLineData(empty)
	req.NoError(err)
	req.JSONEq(`{"tag":"Topic","by":null,"topic":"welcome"}`, string(absentJSON))
	req.JSONEq(`{"tag":"Topic","by":"","topic":"welcome"}`, string(emptyJSON))

	decodedAbsent, err := UnmarshalLineData(absentJSON)
	req.NoError(err)
	decodedEmpty, err := UnmarshalLineData(emptyJSON)
	req.NoError(err)
	req.NotEqual(decodedAbsent, decodedEmpty)
}

func Test_UnmarshalLineData_Rejects(t *testing.T) {
	_, err := UnmarshalLineData([]byte(`{"tag":"Ban","user":"bob"}`))
	require.ErrorIs(t, err, errors.ErrUnknownTag)

	_, err = UnmarshalLineData([]byte(`{"topic":"welcome"}`))
	require.ErrorIs(t, err, errors.ErrMissingTag)

	_, err = UnmarshalLineData([]byte(`not json`))
	require.Error(t, err)
}

func Test_BufferLine_Time_WholeSecondsOnly(t *testing.T) {
	req := require.New(t)
	zone := time.FixedZone("UTC+7", 7*3600)
	at := time.Date(2024, 6, 15, 12, 30, 45, 987654321, zone)

	line := NewBufferLine(at, Part{User: User{Nick: "bob"}, Reason: "brb"})
	req.Equal(at.Unix(), line.Time().Unix())
	req.Zero(line.Time().Nanosecond())
	// Repeated calls observe the same instant.
	req.Equal(line.Time(), line.Time())
}

func Test_BufferLine_JoinScenario_RoundTrip(t *testing.T) {
	req := require.New(t)
	line := NewBufferLine(
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Join{User: User{Nick: "alice", Ident: "a", Host: "h"}},
	)

	data, err := json.Marshal(line)
	req.NoError(err)
	req.JSONEq(
		`{"time":1609459200,"data":{"tag":"Join","user":{"nick":"alice","ident":"a","host":"h"}}}`,
		string(data),
	)

	var decoded BufferLine
	req.NoError(json.Unmarshal(data, &decoded))
	req.Equal(line, decoded)
	req.EqualValues(1609459200, decoded.Time().Unix())
}

func Test_TimeCodec_RoundTripKeepsEpochSecond(t *testing.T) {
	req := require.New(t)
	for _, sec := range []int64{0, -1, 1609459200} {
		req.Equal(sec, EncodeTime(DecodeTime(sec)))
	}
}
