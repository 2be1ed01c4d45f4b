package glk

import (
	"bytes"
	"encoding/json"
	"strings"
)

type ContentKind string

const (
	ContentBuffer  ContentKind = "buffer"
	ContentGrid    ContentKind = "grid"
	ContentUnknown ContentKind = "unknown"
)

// ContentBlock is the content update for one window. Implementations are
// BufferContent, GridContent and UnknownContent.
type ContentBlock interface {
	Kind() ContentKind
	WindowID() int
}

type Span struct {
	Style     string `json:"style,omitempty"`
	Text      string `json:"text"`
	Hyperlink int    `json:"hyperlink,omitempty"`
}

// Spans accepts both the object form and the older flat ["style", "text", ...] form.
type Spans []Span

func (s *Spans) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	spans := make(Spans, 0, len(items))
	var style *string
	for _, item := range items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 {
			continue
		}

		if trimmed[0] == '{' {
			var span Span
			if err := json.Unmarshal(trimmed, &span); err != nil {
				return err
			}
			spans = append(spans, span)
			continue
		}

		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		if style == nil {
			style = &str
			continue
		}
		spans = append(spans, Span{Style: *style, Text: str})
		style = nil
	}

	*s = spans
	return nil
}

func (s Spans) Text() string {
	var b strings.Builder
	for _, span := range s {
		b.WriteString(span.Text)
	}
	return b.String()
}

type Paragraph struct {
	Append    bool  `json:"append,omitempty"`
	FlowBreak bool  `json:"flowbreak,omitempty"`
	Spans     Spans `json:"content,omitempty"`
}

type BufferContent struct {
	Window     int
	Clear      bool
	Paragraphs []Paragraph
}

func (BufferContent) Kind() ContentKind { return ContentBuffer }
func (c BufferContent) WindowID() int   { return c.Window }

type GridLine struct {
	Line  int   `json:"line"`
	Spans Spans `json:"content,omitempty"`
}

type GridContent struct {
	Window int
	Lines  []GridLine
}

func (GridContent) Kind() ContentKind { return ContentGrid }
func (c GridContent) WindowID() int   { return c.Window }

type UnknownContent struct {
	Window int
	Raw    json.RawMessage
}

func (UnknownContent) Kind() ContentKind { return ContentUnknown }
func (c UnknownContent) WindowID() int   { return c.Window }

type contentWire struct {
	ID    int             `json:"id"`
	Clear bool            `json:"clear"`
	Text  json.RawMessage `json:"text"`
	Lines json.RawMessage `json:"lines"`
}

// decodeContentBlock never fails: anything it cannot classify becomes UnknownContent.
func decodeContentBlock(raw json.RawMessage) ContentBlock {
	var wire contentWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return UnknownContent{Raw: raw}
	}

	if len(wire.Text) > 0 {
		var paragraphs []Paragraph
		if err := json.Unmarshal(wire.Text, &paragraphs); err == nil {
			return BufferContent{Window: wire.ID, Clear: wire.Clear, Paragraphs: paragraphs}
		}
	}

	if len(wire.Lines) > 0 {
		var lines []GridLine
		if err := json.Unmarshal(wire.Lines, &lines); err == nil {
			return GridContent{Window: wire.ID, Lines: lines}
		}
	}

	return UnknownContent{Window: wire.ID, Raw: raw}
}

// ExtractText renders a block as plain text, one newline per logical line.
// Every buffer paragraph ends its own line, including append paragraphs: a turn's
// output is only read as text, so a continued prompt line reads the same either way.
func ExtractText(block ContentBlock) string {
	var b strings.Builder

	switch c := block.(type) {
	case BufferContent:
		for _, paragraph := range c.Paragraphs {
			b.WriteString(paragraph.Spans.Text())
			b.WriteByte('\n')
		}
	case GridContent:
		for _, line := range c.Lines {
			b.WriteString(strings.TrimRight(line.Spans.Text(), " "))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// UpdateText concatenates the text of every block in arrival order.
func UpdateText(update Update) string {
	var b strings.Builder
	for _, block := range update.Content {
		b.WriteString(ExtractText(block))
	}
	return b.String()
}
