package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// output writes status lines to stderr. Results always go to stdout.
type output struct {
	w            io.Writer
	successColor *color.Color
	errorColor   *color.Color
}

func newOutput(w io.Writer) *output {
	return &output{
		w:            w,
		successColor: color.New(color.FgGreen, color.Bold),
		errorColor:   color.New(color.FgRed, color.Bold),
	}
}

func (o *output) Successf(format string, args ...interface{}) {
	_, _ = o.successColor.Fprintln(o.w, fmt.Sprintf(format, args...))
}

func (o *output) Error(msg string) {
	_, _ = o.errorColor.Fprintln(o.w, "Error: "+msg)
}
