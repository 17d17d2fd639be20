// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// timestampLayout is used by the text formatter.
const timestampLayout = "2006-01-02 15:04:05"

// NewLogger builds a logrus logger writing to w with lc's level and format.
func NewLogger(lc LogConfig, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return nil, invalidf("log.level: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch lc.Format {
	case FormatText:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampLayout,
		})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		return nil, invalidf("log.format %q", lc.Format)
	}

	return logger, nil
}
