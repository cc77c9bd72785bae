// Package codec reads and writes the serialized form of scrollback
// records: one JSON object per line, append-only. It works over plain
// io streams; whatever medium holds them is the storage collaborator's
// concern.
package codec

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/samber/lo"

	"bouncer-lab/domain"
)

// LineWriter appends scrollback records to a stream.
type LineWriter struct {
	w io.Writer
}

func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// WriteLines appends each line as one JSON record.
func (lw *LineWriter) WriteLines(lines []domain.BufferLine) error {
	for _, line := range lines {
		data, err := json.Marshal(line)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		if _, err := lw.w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// LineReader decodes scrollback records from a stream, one per call.
type LineReader struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Read decodes the next record, skipping blank lines. Records have no size
// limit; a line is consumed whole however long it is. Read returns io.EOF
// once the stream is exhausted. A record that does not decode is returned
// as an error; the line is already consumed, so the reader stays framed on
// record boundaries and the caller decides whether to skip or abort.
func (lr *LineReader) Read() (domain.BufferLine, error) {
	for {
		raw, err := lr.r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return domain.BufferLine{}, err
		}
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 {
			if err == io.EOF {
				return domain.BufferLine{}, io.EOF
			}
			continue
		}
		var line domain.BufferLine
		if err := json.Unmarshal(trimmed, &line); err != nil {
			return domain.BufferLine{}, err
		}
		return line, nil
	}
}

// ReadScrollback reads a whole stream and returns its records newest
// first, the order scrollback is served in.
func ReadScrollback(r io.Reader) ([]domain.BufferLine, error) {
	reader := NewLineReader(r)
	var lines []domain.BufferLine
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lo.Reverse(lines), nil
}
