package buffer

import (
	"time"

	"bouncer-lab/domain"
)

// Handle is a client-side view of a buffer. It keeps the lines added to
// either end that the view has not yet consumed.
type Handle struct {
	front     []domain.BufferLine
	back      []domain.BufferLine
	fetchLogs bool
}

func NewHandle() *Handle {
	return &Handle{}
}

// PushStatus appends a synthetic local status line to the bottom of the
// buffer.
func (h *Handle) PushStatus(msg string) {
	h.front = append(h.front, domain.NewBufferLine(time.Now(), domain.Message{
		Kind: domain.Status,
		From: "status",
		Msg:  msg,
	}))
}

// PushFront appends newly received lines to the bottom of the buffer.
func (h *Handle) PushFront(lines []domain.BufferLine) {
	h.front = append(h.front, lines...)
}

// PushBack appends scrollback lines to the top of the buffer.
func (h *Handle) PushBack(lines []domain.BufferLine) {
	h.back = append(h.back, lines...)
}

// TakeFront returns the unconsumed bottom lines and clears them.
func (h *Handle) TakeFront() []domain.BufferLine {
	front := h.front
	h.front = nil
	return front
}

// TakeBack returns the unconsumed top lines and clears them.
func (h *Handle) TakeBack() []domain.BufferLine {
	back := h.back
	h.back = nil
	return back
}

// RequestLogs marks that the client should ask the core for more
// scrollback.
func (h *Handle) RequestLogs() {
	h.fetchLogs = true
}

// TakeLogRequest reports a pending scrollback request and clears it.
func (h *Handle) TakeLogRequest() bool {
	req := h.fetchLogs
	h.fetchLogs = false
	return req
}
