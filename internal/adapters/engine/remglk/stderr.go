package remglk

import (
	"bytes"
	"log/slog"
	"sync"
)

type lineLogger struct {
	logger *slog.Logger

	mu      sync.Mutex
	pending []byte
}

func (w *lineLogger) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		if line := bytes.TrimSpace(w.pending[:i]); len(line) > 0 {
			w.logger.Debug("interpreter stderr", "line", string(line))
		}
		w.pending = w.pending[i+1:]
	}

	return len(p), nil
}
