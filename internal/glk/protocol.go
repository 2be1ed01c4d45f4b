package glk

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/glkpilot/internal/domain"
)

const (
	TypeInit   = "init"
	TypeUpdate = "update"
	TypeError  = "error"
	TypePass   = "pass"

	InputLine = "line"
	InputChar = "char"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

type Metrics struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type InitEvent struct {
	Type    string   `json:"type"`
	Gen     int      `json:"gen"`
	Metrics Metrics  `json:"metrics"`
	Support []string `json:"support,omitempty"`
}

func NewInitEvent(width, height int) InitEvent {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	return InitEvent{
		Type:    TypeInit,
		Gen:     0,
		Metrics: Metrics{Width: width, Height: height},
	}
}

type Window struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	Rock   int    `json:"rock,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type InputRequest struct {
	Window int    `json:"id"`
	Gen    int    `json:"gen,omitempty"`
	Type   string `json:"type"`
	MaxLen int    `json:"maxlen,omitempty"`
}

func (r InputRequest) Mode() (domain.InputMode, bool) {
	mode := domain.InputMode(r.Type)
	return mode, mode.Valid()
}

type InputEvent struct {
	Type   string `json:"type"`
	Gen    int    `json:"gen"`
	Window int    `json:"window"`
	Value  string `json:"value"`
}

// Update is one batch pushed by the interpreter. Gen is nil when the batch carried no generation.
type Update struct {
	Type    string
	Gen     *int
	Windows []Window
	Content []ContentBlock
	Input   []InputRequest
	Disable bool
	Exit    bool
	Message string
}

type updateWire struct {
	Type    string            `json:"type"`
	Gen     *int              `json:"gen"`
	Windows []Window          `json:"windows"`
	Content []json.RawMessage `json:"content"`
	Input   []InputRequest    `json:"input"`
	Disable bool              `json:"disable"`
	Exit    bool              `json:"exit"`
	Message string            `json:"message"`
}

func (u *Update) UnmarshalJSON(data []byte) error {
	var wire updateWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	blocks := make([]ContentBlock, 0, len(wire.Content))
	for _, raw := range wire.Content {
		blocks = append(blocks, decodeContentBlock(raw))
	}

	*u = Update{
		Type:    wire.Type,
		Gen:     wire.Gen,
		Windows: wire.Windows,
		Content: blocks,
		Input:   wire.Input,
		Disable: wire.Disable,
		Exit:    wire.Exit,
		Message: wire.Message,
	}

	return nil
}

// DecodeUpdate parses one interpreter message. Shape errors are reported as domain.ErrMalformedUpdate.
func DecodeUpdate(data []byte) (Update, error) {
	var update Update
	if err := json.Unmarshal(data, &update); err != nil {
		return Update{}, fmt.Errorf("%w: %v", domain.ErrMalformedUpdate, err)
	}

	return update, nil
}

func (u Update) IsError() bool {
	return u.Type == TypeError
}

func (u Update) Ended() bool {
	return u.Disable || u.Exit
}

func (u Update) Validate() error {
	switch u.Type {
	case TypeUpdate, TypePass, "":
	case TypeError:
		if u.Message == "" {
			return fmt.Errorf("%w: error event without message", domain.ErrMalformedUpdate)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown event type %q", domain.ErrMalformedUpdate, u.Type)
	}

	if u.Gen == nil && len(u.Content) == 0 && len(u.Input) == 0 && len(u.Windows) == 0 && !u.Disable && !u.Exit {
		return fmt.Errorf("%w: no content, input or generation", domain.ErrMalformedUpdate)
	}

	return nil
}
