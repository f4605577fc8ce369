package main

import (
	"github.com/hashicorp/go-hclog"
	"io"
)

const LoggerName = "sheetcells"

func NewLogger(level string, output io.Writer) hclog.Logger {
	logLevel := hclog.LevelFromString(level)
	if logLevel == hclog.NoLevel {
		logLevel = hclog.Info
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   LoggerName,
		Level:  logLevel,
		Output: output,
	})
}
