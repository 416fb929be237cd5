package main

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	html2pdf "github.com/alnah/go-html2pdf"
)

// Renderer is the interface for the render library.
type Renderer interface {
	Render(ctx context.Context, req html2pdf.Request) (*html2pdf.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Renderer = (*html2pdf.Renderer)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	NewRenderer func(timeout time.Duration, log *zap.SugaredLogger) Renderer
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewRenderer: func(timeout time.Duration, log *zap.SugaredLogger) Renderer {
			return html2pdf.NewRenderer(
				html2pdf.WithTimeout(timeout),
				html2pdf.WithLogger(log),
			)
		},
	}
}
