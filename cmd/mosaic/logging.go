package main

import (
	"io"
	"os"
	"path/filepath"

	"pkt.systems/pslog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openLogger returns a logger writing to path, or fallback when path is
// empty.
func openLogger(path string, fallback pslog.Logger) (pslog.Logger, io.Closer, error) {
	if path == "" {
		return fallback, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(file))
	return logger, file, nil
}
