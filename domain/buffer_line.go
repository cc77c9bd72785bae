package domain

import (
	"encoding/json"
	"time"
)

// EncodeTime collapses a timestamp to whole epoch seconds. Sub-second
// precision and the zone identity are dropped; only the absolute instant
// survives, which is all a scrollback needs for ordering and display.
func EncodeTime(t time.Time) int64 {
	return t.Unix()
}

// DecodeTime rebuilds a timestamp from epoch seconds, in the local zone
// with a zero sub-second component.
func DecodeTime(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// BufferLine is one entry of a buffer's scrollback: an epoch-second
// timestamp paired with the event data. Lines are immutable once built and
// may be read, copied, or serialized concurrently.
type BufferLine struct {
	time int64
	Data LineData
}

// NewBufferLine stamps data with t, normalized to whole epoch seconds.
func NewBufferLine(t time.Time, data LineData) BufferLine {
	return BufferLine{time: EncodeTime(t), Data: data}
}

// Time returns the line's timestamp. The epoch second is exactly the one
// given to NewBufferLine; the zone is the local one, not the original.
func (l BufferLine) Time() time.Time {
	return DecodeTime(l.time)
}

type bufferLineWire struct {
	Time int64           `json:"time"`
	Data json.RawMessage `json:"data"`
}

func (l BufferLine) MarshalJSON() ([]byte, error) {
	data, err := MarshalLineData(l.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(bufferLineWire{Time: l.time, Data: data})
}

func (l *BufferLine) UnmarshalJSON(b []byte) error {
	var wire bufferLineWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	data, err := UnmarshalLineData(wire.Data)
	if err != nil {
		return err
	}
	*l = BufferLine{time: wire.Time, Data: data}
	return nil
}
