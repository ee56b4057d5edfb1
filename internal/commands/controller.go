// Package commands contains the CLI commands for the application
package commands

import (
	"context"

	"github.com/rs/zerolog"
)

// Flags holds the global command-line flags
type Flags struct {
	LogLevel      string
	Config        string
	Package       string
	APIImport     string
	RuntimeImport string
	ClientName    string
	FileBase      string
	Comments      bool
	Check         bool
	Verify        bool
	Watch         bool
}

// Controller runs the commands with the parsed flags
type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// Generate writes the bindings and declarations of a schema, or checks or
// watches them depending on the flags
func (c *Controller) Generate(ctx context.Context, args []string) error {
	return NewGenerateCommand(c.Flags, c.Logger).Execute(ctx, args)
}
