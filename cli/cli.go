// Package cli provides the CLI service for the qualifier.
package cli

import (
	"github.com/database-playground/webhook-qualifier/internal/config"
	"github.com/database-playground/webhook-qualifier/internal/qualifier"
)

// Context is the context for the CLI.
type Context struct {
	qualifier *qualifier.Qualifier
	cfg       config.Config
}

// NewContext creates a new Context.
func NewContext(qualifier *qualifier.Qualifier, cfg config.Config) *Context {
	return &Context{
		qualifier: qualifier,
		cfg:       cfg,
	}
}
