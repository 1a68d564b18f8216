package app

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// NewLogger builds a text logger at the given level writing to out.
func NewLogger(level string, out io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := log.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return l, nil
}

// OpenLogger returns a logger for cfg. Logs go to cfg.LogFile when set and to
// fallback otherwise. The returned close func releases the file.
func OpenLogger(cfg *Config, fallback io.Writer) (*log.Logger, func() error, error) {
	out, closeFn := fallback, func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}
	l, err := NewLogger(cfg.LogLevel, out)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return l, closeFn, nil
}
