package domain

import (
	"encoding/json"
	"fmt"

	"bouncer-lab/errors"
)

// MsgKind classifies the delivery semantics of a Message line. The set is
// closed: the plain kinds below plus Response, which is the only kind that
// carries a payload. The zero value is not a valid kind; use one of the
// named kinds or the Response constructor, or serialization will fail with
// ErrUnknownMsgKind.
type MsgKind struct {
	name string
	code uint16
}

var (
	// PrivMsg is an ordinary chat message.
	PrivMsg = MsgKind{name: tagPrivMsg}
	// Notice is an IRC notice.
	Notice = MsgKind{name: tagNotice}
	// Action is a CTCP action, rendered as a first-person action line.
	Action = MsgKind{name: tagAction}
	// Status is a synthetic local status line.
	Status = MsgKind{name: tagStatus}
)

const (
	tagPrivMsg  = "PrivMsg"
	tagNotice   = "Notice"
	tagAction   = "Action"
	tagStatus   = "Status"
	tagResponse = "Response"
)

// Response is the kind of a protocol numeric reply. Any 16-bit code is
// accepted; there is no range validation beyond the type's own width.
func Response(code uint16) MsgKind {
	return MsgKind{name: tagResponse, code: code}
}

func (k MsgKind) String() string { return k.name }

// Code returns the numeric reply code and whether this kind is a Response.
func (k MsgKind) Code() (uint16, bool) {
	return k.code, k.name == tagResponse
}

// MarshalJSON writes plain kinds as bare strings. Response carries a code
// that a bare string cannot hold, so it is written as a tagged object
// {"tag":"Response","code":<code>} instead.
func (k MsgKind) MarshalJSON() ([]byte, error) {
	switch k.name {
	case tagPrivMsg, tagNotice, tagAction, tagStatus:
		return json.Marshal(k.name)
	case tagResponse:
		return json.Marshal(struct {
			Tag  string `json:"tag"`
			Code uint16 `json:"code"`
		}{tagResponse, k.code})
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownMsgKind, k.name)
	}
}

func (k *MsgKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch name {
		case tagPrivMsg, tagNotice, tagAction, tagStatus:
			*k = MsgKind{name: name}
			return nil
		}
		// A bare "Response" is malformed: the code would be lost.
		return fmt.Errorf("%w: %q", errors.ErrUnknownMsgKind, name)
	}
	var obj struct {
		Tag  string `json:"tag"`
		Code uint16 `json:"code"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Tag != tagResponse {
		return fmt.Errorf("%w: %q", errors.ErrUnknownMsgKind, obj.Tag)
	}
	*k = MsgKind{name: tagResponse, code: obj.Code}
	return nil
}
