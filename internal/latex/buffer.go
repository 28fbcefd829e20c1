// Package latex provides the document buffer and the low-level fragment
// primitives the section renderers emit: text styling, hyperlinks, itemized
// lists, section containers, and preamble commands.
package latex

import (
	"io"
	"strings"
)

// Buffer accumulates emitted fragments in order. It is append-only: fragments
// are never rewritten or removed once committed, so a buffer's content always
// reflects exactly the sequence of render calls made against it. A Buffer is
// owned by a single assembly and is not safe for concurrent use.
type Buffer struct {
	fragments []string
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append commits fragments to the end of the buffer.
func (b *Buffer) Append(fragments ...string) {
	b.fragments = append(b.fragments, fragments...)
}

// Len returns the number of committed fragments.
func (b *Buffer) Len() int {
	return len(b.fragments)
}

// Fragments returns a copy of the committed fragments in emission order.
func (b *Buffer) Fragments() []string {
	out := make([]string, len(b.fragments))
	copy(out, b.fragments)
	return out
}

// String renders the buffer as LaTeX source, one fragment per line with a
// trailing newline.
func (b *Buffer) String() string {
	if len(b.fragments) == 0 {
		return ""
	}
	return strings.Join(b.fragments, "\n") + "\n"
}

// WriteTo writes the rendered source to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
