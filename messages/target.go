// Package messages defines the value types exchanged between a bouncer
// core and its clients. Like the domain types they are pure, immutable
// records with a tagged JSON form; no transport lives here.
package messages

import (
	"encoding/json"
	"fmt"

	"bouncer-lab/domain"
	"bouncer-lab/errors"
)

const (
	tagChannel = "Channel"
	tagPrivate = "Private"
	tagNetwork = "Network"
)

// BufTarget identifies a buffer within a network: a channel, a private
// message buffer, or the network's status buffer. It is comparable and can
// be used as a map key.
type BufTarget struct {
	kind string
	name domain.BufID
}

// ChannelTarget identifies an IRC channel buffer.
func ChannelTarget(name domain.BufID) BufTarget {
	return BufTarget{kind: tagChannel, name: name}
}

// PrivateTarget identifies a private message buffer with the given user.
func PrivateTarget(nick domain.BufID) BufTarget {
	return BufTarget{kind: tagPrivate, name: nick}
}

// NetworkTarget identifies the network's status buffer.
func NetworkTarget() BufTarget {
	return BufTarget{kind: tagNetwork}
}

// Name returns the channel or query name, or "*network*" for the status
// buffer.
func (t BufTarget) Name() string {
	if t.kind == tagNetwork {
		return "*network*"
	}
	return string(t.name)
}

func (t BufTarget) IsChannel() bool { return t.kind == tagChannel }
func (t BufTarget) IsPrivate() bool { return t.kind == tagPrivate }
func (t BufTarget) IsNetwork() bool { return t.kind == tagNetwork }

type bufTargetWire struct {
	Tag  string       `json:"tag"`
	Name domain.BufID `json:"name,omitempty"`
}

func (t BufTarget) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case tagChannel, tagPrivate, tagNetwork:
		return json.Marshal(bufTargetWire{Tag: t.kind, Name: t.name})
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, t.kind)
	}
}

func (t *BufTarget) UnmarshalJSON(data []byte) error {
	var wire bufTargetWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Tag {
	case tagChannel, tagPrivate:
		*t = BufTarget{kind: wire.Tag, name: wire.Name}
	case tagNetwork:
		*t = BufTarget{kind: tagNetwork}
	case "":
		return errors.ErrMissingTag
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownTag, wire.Tag)
	}
	return nil
}

// NetInfo is the short summary a client is told about a network.
type NetInfo struct {
	Name    string    `json:"name"`
	Buffers []BufInfo `json:"buffers"`
}

// BufInfo is the short summary a client is told about a buffer.
type BufInfo struct {
	ID BufTarget `json:"id"`
}

func (i BufInfo) Name() string {
	return i.ID.Name()
}

// peekTag reads the "tag" field of a tagged JSON object without touching
// the rest of it.
func peekTag(data []byte) (string, error) {
	var probe struct {
		Tag *string `json:"tag"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", err
	}
	if probe.Tag == nil {
		return "", errors.ErrMissingTag
	}
	return *probe.Tag, nil
}
