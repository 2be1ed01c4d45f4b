package domain

import "errors"

var (
	ErrEngineBootFailure    = errors.New("engine boot failure")
	ErrEngineNotRunning     = errors.New("engine not running")
	ErrMalformedUpdate      = errors.New("malformed update event")
	ErrDecisionMakerFailure = errors.New("decision maker failure")
	ErrBridgeBusy           = errors.New("bridge is awaiting a previous command")
	ErrNoPendingInput       = errors.New("engine is not waiting for input")
	ErrSaveUnsupported      = errors.New("save and restore are not supported")
	ErrCommandsExhausted    = errors.New("no commands left to play")
	ErrTranscriptNotFound   = errors.New("transcript not found")
	ErrSecretNotFound       = errors.New("secret not found")
)
