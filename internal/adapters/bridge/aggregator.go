package bridge

import "strings"

// Aggregator accumulates window text between two input requests.
type Aggregator struct {
	buf strings.Builder
}

func (a *Aggregator) Append(text string) {
	a.buf.WriteString(text)
}

func (a *Aggregator) Len() int {
	return a.buf.Len()
}

// Flush returns the buffered text trimmed at the edges and clears the buffer.
func (a *Aggregator) Flush() string {
	out := strings.TrimSpace(a.buf.String())
	a.buf.Reset()
	return out
}

// Discard clears the buffer and reports how many bytes were dropped.
func (a *Aggregator) Discard() int {
	n := a.buf.Len()
	a.buf.Reset()
	return n
}
