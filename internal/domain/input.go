package domain

type InputMode string

const (
	InputModeLine InputMode = "line"
	InputModeChar InputMode = "char"
)

func (m InputMode) Valid() bool {
	switch m {
	case InputModeLine, InputModeChar:
		return true
	default:
		return false
	}
}

// PendingInputRequest is the window currently waiting for input. At most one is active per session.
type PendingInputRequest struct {
	Window int
	Mode   InputMode
	Gen    int
}
