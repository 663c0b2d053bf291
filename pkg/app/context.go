package app

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool
}

// NewContext creates a new application context
func NewContext() *Context {
	return &Context{
		Context:      context.Background(),
		OutputFormat: "table",
	}
}

// ConfigureLogging wires the verbosity flags into the process logger.
// Verbose enables per-chunk debug output from the retrieval loop; quiet
// suppresses everything below errors.
func (c *Context) ConfigureLogging() {
	switch {
	case c.Quiet:
		logrus.SetLevel(logrus.ErrorLevel)
	case c.Verbose:
		logrus.SetLevel(logrus.DebugLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Log outputs a message when verbose output is enabled
func (c *Context) Log(message string) {
	if !c.Quiet && c.Verbose {
		logrus.Info(message)
	}
}

// Error outputs an error message unless quiet
func (c *Context) Error(message string) {
	if !c.Quiet {
		logrus.Error(message)
	}
}
