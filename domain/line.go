package domain

import (
	"encoding/json"
	"fmt"

	"bouncer-lab/errors"
)

// LineData is one event in a buffer's scrollback. It is a closed set: only
// the variants in this file implement it, and exactly one variant is active
// per line.
//
// Join, Part, Kick and Quit carry whatever identity resolution was
// available when the event was observed. A kicked target is often known
// only by name while the actor has a resolvable full identity; this
// asymmetry is part of the record, not something to normalize away.
type LineData interface {
	lineData()
}

// Message is a chat message or protocol line. From is the raw display name
// as it arrived, not a resolved Sender.
type Message struct {
	Kind MsgKind `json:"kind"`
	From string  `json:"from"`
	Msg  string  `json:"msg"`
}

// Topic is a channel topic change or announcement. By is nil when the
// topic was reported without attribution, e.g. on join.
type Topic struct {
	By    *string `json:"by"`
	Topic string  `json:"topic"`
}

// Join is a user joining the channel.
type Join struct {
	User User `json:"user"`
}

// Part is a user leaving voluntarily. Reason may be empty but is always
// present.
type Part struct {
	User   User   `json:"user"`
	Reason string `json:"reason"`
}

// Kick is a forced removal. By is the actor; the target is known only by
// name at the time the event is observed.
type Kick struct {
	By     User   `json:"by"`
	User   string `json:"user"`
	Reason string `json:"reason"`
}

// Quit is a user disconnecting from the server. Msg is nil when no quit
// message was given.
type Quit struct {
	User User    `json:"user"`
	Msg  *string `json:"msg"`
}

// NickChange is a nickname change. User is the identity before the change.
// Its wire tag is "Nick".
type NickChange struct {
	User User `json:"user"`
	New  Nick `json:"new"`
}

func (Message) lineData()    {}
func (Topic) lineData()      {}
func (Join) lineData()       {}
func (Part) lineData()       {}
func (Kick) lineData()       {}
func (Quit) lineData()       {}
func (NickChange) lineData() {}

const (
	tagMessage = "Message"
	tagTopic   = "Topic"
	tagJoin    = "Join"
	tagPart    = "Part"
	tagKick    = "Kick"
	tagQuit    = "Quit"
	tagNick    = "Nick"
)

// Tag returns the wire tag of a line variant, or "" for anything that is
// not one of the closed set.
func Tag(d LineData) string {
	switch d.(type) {
	case Message:
		return tagMessage
	case Topic:
		return tagTopic
	case Join:
		return tagJoin
	case Part:
		return tagPart
	case Kick:
		return tagKick
	case Quit:
		return tagQuit
	case NickChange:
		return tagNick
	default:
		return ""
	}
}

// MarshalLineData encodes a line variant as a tagged JSON object: the
// variant's fields plus a "tag" field holding the variant name.
func MarshalLineData(d LineData) ([]byte, error) {
	switch v := d.(type) {
	case Message:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Message
		}{tagMessage, v})
	case Topic:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Topic
		}{tagTopic, v})
	case Join:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Join
		}{tagJoin, v})
	case Part:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Part
		}{tagPart, v})
	case Kick:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Kick
		}{tagKick, v})
	case Quit:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Quit
		}{tagQuit, v})
	case NickChange:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			NickChange
		}{tagNick, v})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, d)
	}
}

// UnmarshalLineData decodes a line variant from its tagged JSON form.
func UnmarshalLineData(data []byte) (LineData, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagMessage:
		var v Message
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagTopic:
		var v Topic
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagJoin:
		var v Join
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagPart:
		var v Part
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagKick:
		var v Kick
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagQuit:
		var v Quit
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagNick:
		var v NickChange
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
}
