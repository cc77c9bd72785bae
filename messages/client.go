package messages

import (
	"encoding/json"
	"fmt"

	"bouncer-lab/domain"
	"bouncer-lab/errors"
)

const (
	tagListNets       = "ListNets"
	tagListGlobalBufs = "ListGlobalBufs"
	tagListBufs       = "ListBufs"
	tagJoinChan       = "JoinChan"
	tagSendMsg        = "SendMsg"
	tagPartChan       = "PartChan"
	tagFetchLogs      = "FetchLogs"
)

// ClientMsg is a message sent from a client to the core.
type ClientMsg interface{ clientMsg() }

// ClientNet wraps a message about a network.
type ClientNet struct {
	Net domain.NetID
	Msg ClientNetMsg
}

// ClientBuf wraps a message about a global buffer.
type ClientBuf struct {
	Buf domain.BufID
	Msg ClientBufMsg
}

// ListNets asks the core to re-send the network list.
type ListNets struct{}

// ListGlobalBufs asks the core to re-send the global buffer list.
type ListGlobalBufs struct{}

func (ClientNet) clientMsg()      {}
func (ClientBuf) clientMsg()      {}
func (ListNets) clientMsg()       {}
func (ListGlobalBufs) clientMsg() {}

// ClientNetMsg is a message from a client about a network.
type ClientNetMsg interface{ clientNetMsg() }

// ClientNetBuf wraps a message about a buffer within the network.
type ClientNetBuf struct {
	Buf BufTarget
	Msg ClientBufMsg
}

// ListBufs asks the core to re-send the network's buffer list.
type ListBufs struct{}

// JoinChan asks the core to join the channel with the given name. On
// success the core adds a buffer for it and answers with Joined.
type JoinChan struct {
	Name string `json:"name"`
}

func (ClientNetBuf) clientNetMsg() {}
func (ListBufs) clientNetMsg()     {}
func (JoinChan) clientNetMsg()     {}

// ClientBufMsg is a message from a client about a buffer.
type ClientBufMsg interface{ clientBufMsg() }

// SendMsg posts a message to the buffer.
type SendMsg struct {
	Msg string `json:"msg"`
}

// PartChan asks the core to part the channel. Msg is nil when the client
// gave no part message.
type PartChan struct {
	Msg *string `json:"msg"`
}

// FetchLogs asks the core for count more lines of scrollback. The core
// tracks which lines each client has already seen.
type FetchLogs struct {
	Count int `json:"count"`
}

func (SendMsg) clientBufMsg()   {}
func (PartChan) clientBufMsg()  {}
func (FetchLogs) clientBufMsg() {}

// MarshalClientMsg encodes a client message as a tagged JSON object.
func MarshalClientMsg(m ClientMsg) ([]byte, error) {
	switch v := m.(type) {
	case ClientNet:
		inner, err := MarshalClientNetMsg(v.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Tag string          `json:"tag"`
			Net domain.NetID    `json:"net"`
			Msg json.RawMessage `json:"msg"`
		}{tagNetMsg, v.Net, inner})
	case ClientBuf:
		inner, err := MarshalClientBufMsg(v.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Tag string          `json:"tag"`
			Buf domain.BufID    `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}{tagBufMsg, v.Buf, inner})
	case ListNets:
		return json.Marshal(struct {
			Tag string `json:"tag"`
		}{tagListNets})
	case ListGlobalBufs:
		return json.Marshal(struct {
			Tag string `json:"tag"`
		}{tagListGlobalBufs})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, m)
	}
}

// UnmarshalClientMsg decodes a client message from its tagged JSON form.
func UnmarshalClientMsg(data []byte) (ClientMsg, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNetMsg:
		var wire struct {
			Net domain.NetID    `json:"net"`
			Msg json.RawMessage `json:"msg"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		inner, err := UnmarshalClientNetMsg(wire.Msg)
		if err != nil {
			return nil, err
		}
		return ClientNet{Net: wire.Net, Msg: inner}, nil
	case tagBufMsg:
		var wire struct {
			Buf domain.BufID    `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		inner, err := UnmarshalClientBufMsg(wire.Msg)
		if err != nil {
			return nil, err
		}
		return ClientBuf{Buf: wire.Buf, Msg: inner}, nil
	case tagListNets:
		return ListNets{}, nil
	case tagListGlobalBufs:
		return ListGlobalBufs{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
}

// MarshalClientNetMsg encodes a network-scoped client message.
func MarshalClientNetMsg(m ClientNetMsg) ([]byte, error) {
	switch v := m.(type) {
	case ClientNetBuf:
		inner, err := MarshalClientBufMsg(v.Msg)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Tag string          `json:"tag"`
			Buf BufTarget       `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}{tagBufMsg, v.Buf, inner})
	case ListBufs:
		return json.Marshal(struct {
			Tag string `json:"tag"`
		}{tagListBufs})
	case JoinChan:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			JoinChan
		}{tagJoinChan, v})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, m)
	}
}

// UnmarshalClientNetMsg decodes a network-scoped client message.
func UnmarshalClientNetMsg(data []byte) (ClientNetMsg, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagBufMsg:
		var wire struct {
			Buf BufTarget       `json:"buf"`
			Msg json.RawMessage `json:"msg"`
		}
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}
		inner, err := UnmarshalClientBufMsg(wire.Msg)
		if err != nil {
			return nil, err
		}
		return ClientNetBuf{Buf: wire.Buf, Msg: inner}, nil
	case tagListBufs:
		return ListBufs{}, nil
	case tagJoinChan:
		var v JoinChan
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
}

// MarshalClientBufMsg encodes a buffer-scoped client message.
func MarshalClientBufMsg(m ClientBufMsg) ([]byte, error) {
	switch v := m.(type) {
	case SendMsg:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			SendMsg
		}{tagSendMsg, v})
	case PartChan:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			PartChan
		}{tagPartChan, v})
	case FetchLogs:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			FetchLogs
		}{tagFetchLogs, v})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, m)
	}
}

// UnmarshalClientBufMsg decodes a buffer-scoped client message.
func UnmarshalClientBufMsg(data []byte) (ClientBufMsg, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagSendMsg:
		var v SendMsg
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagPartChan:
		var v PartChan
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagFetchLogs:
		var v FetchLogs
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
}
