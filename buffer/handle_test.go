package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bouncer-lab/domain"
)

func Test_Handle_PushStatus(t *testing.T) {
	req := require.New(t)
	h := NewHandle()
	h.PushStatus("connected to freenode")

	front := h.TakeFront()
	req.Len(front, 1)
	msg, ok := front[0].Data.(domain.Message)
	req.True(ok)
	req.Equal(domain.Status, msg.Kind)
	req.Equal("status", msg.From)
	req.Equal("connected to freenode", msg.Msg)
}

func Test_Handle_TakeClearsLines(t *testing.T) {
	req := require.New(t)
	h := NewHandle()
	lines := storedLines(2)

	h.PushFront(lines)
	req.Equal(lines, h.TakeFront())
	req.Empty(h.TakeFront())

	h.PushBack(lines)
	req.Equal(lines, h.TakeBack())
	req.Empty(h.TakeBack())
}

func Test_Handle_LogRequest(t *testing.T) {
	req := require.New(t)
	h := NewHandle()
	req.False(h.TakeLogRequest())

	h.RequestLogs()
	req.True(h.TakeLogRequest())
	req.False(h.TakeLogRequest())
}
