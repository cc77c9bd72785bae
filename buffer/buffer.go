// Package buffer models the in-memory scrollback of chat buffers: the
// core-side Buffer that accumulates lines and serves scrollback, and the
// client-side Handle that stages lines for a view.
package buffer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"bouncer-lab/domain"
	"bouncer-lab/messages"
)

// Scrollback supplies batches of older lines on demand, newest first. The
// storage collaborator implements it; an empty batch means nothing older
// is left.
type Scrollback interface {
	FetchLines() []domain.BufferLine
}

// Buffer is the core-side scrollback of one channel, query, or status
// buffer. Lines received since startup live in the front slice; older
// lines pulled from the Scrollback source live in the back slice and are
// addressed with negative indices.
type Buffer struct {
	netID  domain.NetID
	id     messages.BufTarget
	topic  string
	front  []domain.BufferLine
	back   []domain.BufferLine
	joined bool
	users  map[string]struct{}
	// Number of back lines already served to the client.
	sent   int
	source Scrollback
	log    *slog.Logger
}

func New(log *slog.Logger, netID domain.NetID, id messages.BufTarget, source Scrollback) *Buffer {
	b := &Buffer{
		netID:  netID,
		id:     id,
		users:  make(map[string]struct{}),
		source: source,
		log:    log.With("net", string(netID), "buf", id.Name()),
	}
	b.fetchBack()
	return b
}

// ID returns the buffer's identifier.
func (b *Buffer) ID() messages.BufTarget { return b.id }

// NetID returns the identifier of the network this buffer belongs to.
func (b *Buffer) NetID() domain.NetID { return b.netID }

// AsInfo summarizes this buffer for a client listing.
func (b *Buffer) AsInfo() messages.BufInfo {
	return messages.BufInfo{ID: b.id}
}

// Infos summarizes a set of buffers for a NetInfo listing.
func Infos(bufs []*Buffer) []messages.BufInfo {
	return lo.Map(bufs, func(b *Buffer, _ int) messages.BufInfo {
		return b.AsInfo()
	})
}

func (b *Buffer) Topic() string         { return b.topic }
func (b *Buffer) SetTopic(topic string) { b.topic = topic }

func (b *Buffer) Joined() bool          { return b.joined }
func (b *Buffer) SetJoined(joined bool) { b.joined = joined }

func (b *Buffer) AddUser(nick string)    { b.users[nick] = struct{}{} }
func (b *Buffer) RemoveUser(nick string) { delete(b.users, nick) }

// HasUser reports whether a user with the given nick is present in the
// channel.
func (b *Buffer) HasUser(nick string) bool {
	_, ok := b.users[nick]
	return ok
}

// PushLine stamps data with the current time, appends it to the bottom of
// the buffer, and reports it through send.
func (b *Buffer) PushLine(data domain.LineData, send func(messages.CoreBufMsg)) {
	line := domain.NewBufferLine(time.Now(), data)
	b.log.Debug(fmt.Sprintf("pushing %s line", domain.Tag(data)))
	b.front = append(b.front, line)
	send(messages.NewLines{Lines: []domain.BufferLine{line}})
}

// Line returns the line at idx. Indices >= 0 address lines received since
// startup, oldest first; negative indices address scrollback, -1 being the
// newest stored line. More scrollback is pulled from the source when idx
// points past the loaded back lines.
func (b *Buffer) Line(idx int) (domain.BufferLine, bool) {
	if idx < b.LastIdx() {
		b.fetchBack()
	}
	if idx < 0 {
		i := -idx - 1
		if i >= len(b.back) {
			return domain.BufferLine{}, false
		}
		return b.back[i], true
	}
	if idx >= len(b.front) {
		return domain.BufferLine{}, false
	}
	return b.front[idx], true
}

// LastIdx is the index of the oldest loaded line. It is 0 when no
// scrollback is loaded, in which case the front's first line is the oldest.
func (b *Buffer) LastIdx() int { return -len(b.back) }

// FrontLen is the number of lines received since startup. It is the index
// of the most recent line plus one.
func (b *Buffer) FrontLen() int { return len(b.front) }

// BackLen is the number of loaded scrollback lines, the negative of the
// oldest loaded index.
func (b *Buffer) BackLen() int { return len(b.back) }

// SendScrollback reports up to count not-yet-served stored lines through
// send, newest first, pulling from the source as needed. The buffer tracks
// what has been served, so repeated calls walk further back. Nothing is
// sent once the source is exhausted.
func (b *Buffer) SendScrollback(count int, send func(messages.CoreBufMsg)) {
	for len(b.back)-b.sent < count {
		if !b.fetchBack() {
			break
		}
	}
	n := min(count, len(b.back)-b.sent)
	if n == 0 {
		b.log.Debug("no scrollback left to send")
		return
	}
	lines := b.back[b.sent : b.sent+n]
	b.sent += n
	b.log.Debug(fmt.Sprintf("sending %d lines of scrollback", n))
	send(messages.Scrollback{Lines: lines})
}

// fetchBack pulls one more batch from the scrollback source. It reports
// whether anything new was loaded.
func (b *Buffer) fetchBack() bool {
	if b.source == nil {
		return false
	}
	batch := b.source.FetchLines()
	b.back = append(b.back, batch...)
	return len(batch) > 0
}
