package messages

import (
	"encoding/json"
	"fmt"

	"bouncer-lab/domain"
	"bouncer-lab/errors"
)

const (
	tagNetworks   = "Networks"
	tagGlobalBufs = "GlobalBufs"
	tagNetMsg     = "NetMsg"
	tagBufMsg     = "BufMsg"
	tagState      = "State"
	tagBuffers    = "Buffers"
	tagJoined     = "Joined"
	tagNewLines   = "NewLines"
	tagScrollback = "Scrollback"
)

// CoreMsg is a message sent from the core to a client. The set is closed;
// only the variants in this file implement it.
type CoreMsg interface{ coreMsg() }

// Networks tells the client about the networks and their buffers.
type Networks struct {
	Networks []NetInfo `json:"networks"`
}

// GlobalBufs tells the client about buffers that belong to no network.
type GlobalBufs struct {
	Buffers []BufInfo `json:"buffers"`
}

// NetMsg wraps a message about a specific network.
type NetMsg struct {
	Net domain.NetID
	Msg CoreNetMsg
}

// BufMsg wraps a message about a global buffer.
type BufMsg struct {
	Buf domain.BufID
	Msg CoreBufMsg
}

func (Networks) coreMsg()   {}
func (GlobalBufs) coreMsg() {}
func (NetMsg) coreMsg()     {}
func (BufMsg) coreMsg()     {}

// CoreNetMsg is a message from the core about a specific network.
type CoreNetMsg interface{ coreNetMsg() }

// NetState reports a change in the network's connection state.
type NetState struct {
	Connected bool `json:"connected"`
}

// NetBuf wraps a message about a buffer within the network.
type NetBuf struct {
	Buf BufTarget
	Msg CoreBufMsg
}

// NetBuffers lists the buffers within the network.
type NetBuffers struct {
	Buffers []BufInfo `json:"buffers"`
}

// Joined tells the requesting client about a buffer it asked the core to
// join. The usual client behavior is to switch to it.
type Joined struct {
	Buffer BufInfo `json:"buffer"`
}

func (NetState) coreNetMsg()   {}
func (NetBuf) coreNetMsg()     {}
func (NetBuffers) coreNetMsg() {}
func (Joined) coreNetMsg()     {}

// CoreBufMsg is a message from the core about a specific buffer.
type CoreBufMsg interface{ coreBufMsg() }

// BufState reports the buffer's state: for channels, whether the user is
// in the channel; for private buffers, whether the other user is online.
type BufState struct {
	Joined bool `json:"joined"`
}

// NewLines carries lines just posted to the bottom of the buffer, oldest
// first. Requested scrollback goes through Scrollback instead.
type NewLines struct {
	Lines []domain.BufferLine `json:"lines"`
}

// Scrollback carries requested scrollback to append to the top of the
// buffer, newest first.
type Scrollback struct {
	Lines []domain.BufferLine `json:"lines"`
}

func (BufState) coreBufMsg()   {}
func (NewLines) coreBufMsg()   {}
func (Scrollback) coreBufMsg() {}

// MarshalCoreMsg encodes a core message as a tagged JSON object.
func MarshalCoreMsg(m CoreMsg) ([]byte, error) {
	switch v := m.(type) {
	case Networks:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Networks
		}{tagNetworks, v})
	case GlobalBufs:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			GlobalBufs
		}{tagGlobalBufs, v})
	case NetMsg:
		inner, err := MarshalCoreNetMsg(v.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Tag string          `json:"tag"`
			Net domain.NetID    `json:"net"`
			Msg json.RawMessage `json:"msg"`
		}{tagNetMsg, v.Net, inner})
	case BufMsg:
		inner, err := MarshalCoreBufMsg(v.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Tag string          `json:"tag"`
			Buf domain.BufID    `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}{tagBufMsg, v.Buf, inner})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, m)
	}
}

// UnmarshalCoreMsg decodes a core message from its tagged JSON form.
func UnmarshalCoreMsg(data []byte) (CoreMsg, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNetworks:
		var v Networks
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagGlobalBufs:
		var v GlobalBufs
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagNetMsg:
		var wire struct {
			Net domain.NetID    `json:"net"`
			Msg json.RawMessage `json:"msg"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		inner, err := UnmarshalCoreNetMsg(wire.Msg)
		if err != nil {
			return nil, err
		}
		return NetMsg{Net: wire.Net, Msg: inner}, nil
	case tagBufMsg:
		var wire struct {
			Buf domain.BufID    `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		inner, err := UnmarshalCoreBufMsg(wire.Msg)
		if err != nil {
			return nil, err
		}
		return BufMsg{Buf: wire.Buf, Msg: inner}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
}

// MarshalCoreNetMsg encodes a network-scoped core message.
func MarshalCoreNetMsg(m CoreNetMsg) ([]byte, error) {
	switch v := m.(type) {
	case NetState:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			NetState
		}{tagState, v})
	case NetBuf:
		inner, err := MarshalCoreBufMsg(v.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Tag string          `json:"tag"`
			Buf BufTarget       `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}{tagBufMsg, v.Buf, inner})
	case NetBuffers:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			NetBuffers
		}{tagBuffers, v})
	case Joined:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Joined
		}{tagJoined, v})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, m)
	}
}

// UnmarshalCoreNetMsg decodes a network-scoped core message.
func UnmarshalCoreNetMsg(data []byte) (CoreNetMsg, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagState:
		var v NetState
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagBufMsg:
		var wire struct {
			Buf BufTarget       `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		inner, err := UnmarshalCoreBufMsg(wire.Msg)
		if err != nil {
			return nil, err
		}
		return NetBuf{Buf: wire.Buf, Msg: inner}, nil
	case tagBuffers:
		var v NetBuffers
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagJoined:
		var v Joined
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
}

// MarshalCoreBufMsg encodes a buffer-scoped core message.
func MarshalCoreBufMsg(m CoreBufMsg) ([]byte, error) {
	switch v := m.(type) {
	case BufState:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			BufState
		}{tagState, v})
	case NewLines:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			NewLines
		}{tagNewLines, v})
	case Scrollback:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			Scrollback
		}{tagScrollback, v})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, m)
	}
}

// UnmarshalCoreBufMsg decodes a buffer-scoped core message.
func UnmarshalCoreBufMsg(data []byte) (CoreBufMsg, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagState:
		var v BufState
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagNewLines:
		var v NewLines
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagScrollback:
		var v Scrollback
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
}
