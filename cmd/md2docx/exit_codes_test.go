package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2docx "github.com/mdwizard/go-md2docx"
	"github.com/mdwizard/go-md2docx/internal/config"
	"github.com/mdwizard/go-md2docx/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "permission", err: os.ErrPermission, want: ExitIO},
		{name: "undecodable", err: fileutil.ErrUndecodable, want: ExitIO},
		{name: "no input", err: ErrNoInput, want: ExitIO},
		{name: "read markdown", err: ErrReadMarkdown, want: ExitIO},
		{name: "write document", err: ErrWriteDocument, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "empty config name", err: config.ErrEmptyConfigName, want: ExitUsage},
		{name: "invalid workers config", err: config.ErrInvalidWorkers, want: ExitUsage},
		{name: "empty markdown", err: md2docx.ErrEmptyMarkdown, want: ExitUsage},
		{name: "invalid theme", err: md2docx.ErrInvalidTheme, want: ExitUsage},
		{name: "invalid worker flag", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "unexpected", err: errors.New("boom"), want: ExitGeneral},
		{name: "wrapped not exist", err: fmt.Errorf("input x: %w", os.ErrNotExist), want: ExitIO},
		{name: "wrapped invalid theme", err: fmt.Errorf("setting up: %w", md2docx.ErrInvalidTheme), want: ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
