// Package notify surfaces monitor events to the operator: every event is
// printed to the console, appended to a per-day log file, and broadcast
// through the event hub.
package notify

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vigil-sh/vigil/internal/domain"
	"github.com/vigil-sh/vigil/internal/events"
)

const dayFormat = "2006-01-02"

// Notifier mirrors events to a console writer and an append-only log file
// partitioned by calendar day. The file for a new day is created at the
// first write of that day.
type Notifier struct {
	mu      sync.Mutex
	console io.Writer
	hub     *events.Hub
	logDir  string
	logger  *slog.Logger

	now func() time.Time

	file    *os.File
	fileDay string
}

// New creates a notifier writing to console and daily files under logDir.
// hub may be nil when no API or TUI consumers exist.
func New(logDir string, console io.Writer, hub *events.Hub, logger *slog.Logger) *Notifier {
	if console == nil {
		console = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		console: console,
		hub:     hub,
		logDir:  logDir,
		logger:  logger,
		now:     time.Now,
	}
}

// Notify delivers one event to all sinks. File errors are logged and do
// not stop delivery to the remaining sinks.
func (n *Notifier) Notify(event domain.Event) {
	line := event.Line()

	n.mu.Lock()
	fmt.Fprintln(n.console, line)

	f, err := n.dayFile()
	if err != nil {
		n.logger.Error("opening daily log file", "dir", n.logDir, "error", err)
	} else if _, err := fmt.Fprintln(f, line); err != nil {
		n.logger.Error("writing daily log file", "file", f.Name(), "error", err)
	}
	n.mu.Unlock()

	if n.hub != nil {
		n.hub.Publish(event)
	}
}

// dayFile returns the open file for today, rotating when the day has
// changed since the last write. Callers hold n.mu.
func (n *Notifier) dayFile() (*os.File, error) {
	day := n.now().Format(dayFormat)
	if n.file != nil && n.fileDay == day {
		return n.file, nil
	}

	if n.file != nil {
		if err := n.file.Close(); err != nil {
			n.logger.Error("closing daily log file", "file", n.file.Name(), "error", err)
		}
		n.file = nil
	}

	if err := os.MkdirAll(n.logDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(n.logDir, "vigil-"+day+".log")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	n.file = f
	n.fileDay = day
	return f, nil
}

// Close closes the current day file, if any
func (n *Notifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.file == nil {
		return nil
	}
	err := n.file.Close()
	n.file = nil
	n.fileDay = ""
	return err
}
