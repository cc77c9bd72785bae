package errors

import "fmt"

var (
	ErrMissingTag     = fmt.Errorf("missing tag field")
	ErrUnknownTag     = fmt.Errorf("unknown tag")
	ErrUnknownMsgKind = fmt.Errorf("unknown message kind")
)
