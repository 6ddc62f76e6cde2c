// Package moods prints the mood legend.
package moods

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/printers"
)

// Moods prints the moods that can be logged, in selector order.
type Moods struct {
	JSON bool
	Out  io.Writer
}

func (m *Moods) Do(_ context.Context) error {
	out := m.Out
	if out == nil {
		out = color.Output
	}
	if m.JSON {
		b, err := json.Marshal(mood.DefaultMoods())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Moods(mood.DefaultMoods())
	return nil
}
