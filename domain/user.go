package domain

import (
	"encoding/json"
	"fmt"

	"bouncer-lab/errors"
)

// User is the full identity of an IRC participant.
type User struct {
	Nick  string `json:"nick"`
	Ident string `json:"ident"`
	Host  string `json:"host"`
}

func (u User) String() string {
	return fmt.Sprintf("%s!%s@%s", u.Nick, u.Ident, u.Host)
}

// Sender is the origin of a message: either a resolved user identity or a
// bare server name. It is a closed set; only UserSender and ServerSender
// implement it. No line variant embeds a Sender; it exists for
// collaborators that need the true origin independent of display
// formatting.
type Sender interface {
	sender()

	// Name returns the user's nick for a user sender and the server's
	// name for a server sender.
	Name() string
}

// UserSender is a message origin with full identity.
type UserSender struct {
	User User `json:"user"`
}

// ServerSender is a message origin known only by server name.
type ServerSender struct {
	Server string `json:"server"`
}

func (UserSender) sender()   {}
func (ServerSender) sender() {}

func (s UserSender) Name() string   { return s.User.Nick }
func (s ServerSender) Name() string { return s.Server }

const (
	tagUser   = "User"
	tagServer = "Server"
)

// MarshalSender encodes a sender as a tagged JSON object.
func MarshalSender(s Sender) ([]byte, error) {
	switch v := s.(type) {
	case UserSender:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			UserSender
		}{tagUser, v})
	case ServerSender:
		return json.Marshal(struct {
			Tag string `json:"tag"`
			ServerSender
		}{tagServer, v})
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownTag, s)
	}
}

// UnmarshalSender decodes a sender from its tagged JSON form.
func UnmarshalSender(data []byte) (Sender, error) {
	tag, err := peekTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagUser:
		var v UserSender
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case tagServer:
		var v ServerSender
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownTag, tag)
	}
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
