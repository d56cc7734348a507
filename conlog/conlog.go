// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog sets up logging.
package conlog

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out: w,
		Formatter: &logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}
}

// Init builds the logger from the configured level and file. An empty path
// logs to stderr, otherwise the file is appended to.
func Init(level, path string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", path)
		}
		w = f
	}
	return New(w, lvl), nil
}
