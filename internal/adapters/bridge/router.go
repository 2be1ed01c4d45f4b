package bridge

import (
	"unicode/utf8"

	"github.com/bnema/glkpilot/internal/domain"
	"github.com/bnema/glkpilot/internal/glk"
)

// Router tracks the single pending input request and encodes commands for it.
type Router struct {
	pending *domain.PendingInputRequest
}

// Observe records the first usable request and reports whether one was found.
// A fresh request replaces any request still pending.
func (r *Router) Observe(requests []glk.InputRequest) bool {
	for _, request := range requests {
		mode, ok := request.Mode()
		if !ok {
			continue
		}

		r.pending = &domain.PendingInputRequest{
			Window: request.Window,
			Mode:   mode,
			Gen:    request.Gen,
		}
		return true
	}

	return false
}

func (r *Router) Pending() (domain.PendingInputRequest, bool) {
	if r.pending == nil {
		return domain.PendingInputRequest{}, false
	}
	return *r.pending, true
}

func (r *Router) Restore(request domain.PendingInputRequest) {
	r.pending = &request
}

func (r *Router) Clear() {
	r.pending = nil
}

// Encode builds the input event for command and consumes the pending request.
// Char requests only take the first character; an empty command sends a space.
func (r *Router) Encode(command string, gen int) (glk.InputEvent, domain.PendingInputRequest, error) {
	if r.pending == nil {
		return glk.InputEvent{}, domain.PendingInputRequest{}, domain.ErrNoPendingInput
	}
	request := *r.pending

	value := command
	if request.Mode == domain.InputModeChar {
		value = " "
		if first, size := utf8.DecodeRuneInString(command); size > 0 {
			value = string(first)
		}
	}

	r.pending = nil

	return glk.InputEvent{
		Type:   string(request.Mode),
		Gen:    gen,
		Window: request.Window,
		Value:  value,
	}, request, nil
}
