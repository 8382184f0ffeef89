package quiz

import (
	"io"
	"log/slog"

	"github.com/dmvnavigator/dmvnav/internal/bank"
	"github.com/dmvnavigator/dmvnav/internal/session"
)

// Env carries the dependencies shared by every screen that starts a session.
type Env struct {
	Bank    *bank.Bank
	Options session.Options
	Logger  *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}
