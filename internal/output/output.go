// Package output provides formatted output utilities for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer handles CLI output formatting. Generated suites go to the out
// stream; diagnostics go to the err stream.
type Writer struct {
	out     io.Writer
	err     io.Writer
	color   bool
	quiet   bool
	verbose bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// SetVerbose enables or disables debug messages.
func (w *Writer) SetVerbose(verbose bool) {
	w.verbose = verbose
}

// Out returns the stdout stream.
func (w *Writer) Out() io.Writer {
	return w.out
}

// Err returns the stderr stream.
func (w *Writer) Err() io.Writer {
	return w.err
}

// Print writes to stdout.
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Error writes to stderr.
func (w *Writer) Error(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format, args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints a progress message to stderr (skipped in quiet mode).
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Errorln(format, args...)
}

// Debug prints a diagnostic message to stderr in verbose mode only.
func (w *Writer) Debug(format string, args ...interface{}) {
	if !w.verbose || w.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%sdebug: %s%s", dim, msg, reset)
	} else {
		w.Errorln("debug: %s", msg)
	}
}

// Success prints a success message to stderr (skipped in quiet mode).
func (w *Writer) Success(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%s%s%s %s", green, "✓", reset, msg)
	} else {
		w.Errorln("%s", msg)
	}
}

// Warning prints a warning message.
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%swarning:%s %s", yellow, reset, msg)
	} else {
		w.Errorln("warning: %s", msg)
	}
}

// ErrorPrefix prints an error message with casegen prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%scasegen:%s %s", red, reset, msg)
	} else {
		w.Errorln("casegen: %s", msg)
	}
}

// Hint prints a hint message for the user.
func (w *Writer) Hint(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%s%s%s", dim, msg, reset)
	} else {
		w.Errorln("%s", msg)
	}
}

// List prints a list of items to stdout.
func (w *Writer) List(items []string) {
	for _, item := range items {
		w.Println("  - %s", item)
	}
}

// Table prints a simple table to stdout.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) string {
		var parts []string
		for i, cell := range cells {
			if i < len(widths) {
				parts = append(parts, fmt.Sprintf("%-*s", widths[i], cell))
			}
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	w.Println("%s", line(headers))
	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	w.Println("%s", line(seps))
	for _, row := range rows {
		w.Println("%s", line(row))
	}
}

// SummaryHeader prints a summary section header to stderr.
func (w *Writer) SummaryHeader(title string) {
	if w.quiet {
		return
	}
	w.Errorln("")
	if w.color {
		w.Errorln("%s=== %s ===%s", bold+cyan, title, reset)
	} else {
		w.Errorln("=== %s ===", title)
	}
}

// SummaryAction prints one exercise outcome with a status indicator and an
// optional detail such as the output path or the error.
func (w *Writer) SummaryAction(name string, success bool, detail string) {
	if w.quiet && success {
		return
	}
	if w.color {
		mark, color := "✓", green
		if !success {
			mark, color = "✗", red
		}
		w.Error("    %s%s%s %-20s", color, mark, reset, name)
		if detail != "" {
			w.Error("  %s%s%s", dim, detail, reset)
		}
	} else {
		mark := "+"
		if !success {
			mark = "x"
		}
		w.Error("    %s %-20s", mark, name)
		if detail != "" {
			w.Error("  %s", detail)
		}
	}
	w.Error("\n")
}

// isTerminal returns true if stderr is a terminal.
func isTerminal() bool {
	if fi, _ := os.Stderr.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)
