// Package export implements mood export.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/export"
	"tableflip.dev/mood/pkg/logging"
)

// Stdout as the output path writes the export to Out.
const Stdout = "-"

type Export struct {
	Service *app.Service
	Format  string
	// Output is the file to write. Empty means the default file name in Dir.
	Output string
	// Dir defaults to the working directory.
	Dir string

	JSON   bool
	Out    io.Writer
	Logger *zap.Logger
}

func (e *Export) out() io.Writer {
	if e.Out == nil {
		return color.Output
	}
	return e.Out
}

func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not export, no persistence")
	}
	b, err := e.Service.Export(e.Format)
	if err != nil {
		return err
	}

	if e.Output == Stdout {
		_, err := e.out().Write(b)
		return err
	}

	path, err := e.path()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	logging.OrNop(e.Logger).Debug("exported", zap.String("path", path), zap.Int("bytes", len(b)))

	if e.JSON {
		_, _ = fmt.Fprintf(e.out(), "{\"path\":%q}\n", path)
		return nil
	}
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(e.out(), "Exported to %s\n", path)
	return nil
}

func (e *Export) path() (string, error) {
	if e.Output != "" {
		return e.Output, nil
	}
	f, err := export.ForName(e.Format, "")
	if err != nil {
		return "", err
	}
	dir := e.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, export.Filename(f)), nil
}
