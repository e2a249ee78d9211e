package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors in a Rust-like style: a header, the location, the
// offending source line with a caret underline, and optional hints.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool

	palette palette
}

// palette holds the colors used for error formatting.
type palette struct {
	err      *color.Color
	errBold  *color.Color
	code     *color.Color
	location *color.Color
	lineNum  *color.Color
	source   *color.Color
	caret    *color.Color
	hint     *color.Color
	note     *color.Color
}

func newPalette(useColor bool) palette {
	p := palette{
		err:      color.New(color.FgRed),
		errBold:  color.New(color.FgHiRed, color.Bold),
		code:     color.New(color.FgHiBlack),
		location: color.New(color.FgCyan),
		lineNum:  color.New(color.FgHiBlack),
		source:   color.New(color.FgWhite),
		caret:    color.New(color.FgHiRed, color.Bold),
		hint:     color.New(color.FgHiYellow),
		note:     color.New(color.FgHiBlue),
	}
	// The formatter decides on its own whether to colorize, independently of
	// the terminal detection done by the color package.
	for _, c := range []*color.Color{p.err, p.errBold, p.code, p.location, p.lineNum, p.source, p.caret, p.hint, p.note} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor, palette: newPalette(useColor)}
}

// FormattedError represents an error ready for display.
type FormattedError struct {
	Code        ErrorCode
	Kind        string // "error", "syntax error", "parse error"
	Message     string
	Filename    string
	Line        int
	Column      int
	EndColumn   int               // For multi-character underlines
	SourceLines []SourceLineEntry // Lines of context
	Hint        string            // "Did you mean?" suggestion
	Note        string            // Additional context
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // True if this is the line with the error
}

// Format formats the error as a string.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix formats the error with an optional prefix like "[1/5]".
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder

	lineNumWidth := 2
	if err.Line >= 100 {
		lineNumWidth = len(fmt.Sprintf("%d", err.Line))
	}

	f.writeHeader(&b, err, prefix)
	f.writeLocation(&b, err, lineNumWidth)
	f.writeSource(&b, err, lineNumWidth)
	if err.Hint != "" {
		f.writeTrailer(&b, "hint: ", f.palette.hint, err.Hint, lineNumWidth, true)
	}
	if err.Note != "" {
		f.writeTrailer(&b, "note: ", f.palette.note, err.Note, lineNumWidth, false)
	}
	return b.String()
}

func (f *Formatter) writeHeader(b *strings.Builder, err *FormattedError, prefix string) {
	label := "error"
	if err.Kind != "" && err.Kind != "error" {
		label = err.Kind
	}
	b.WriteString(f.palette.errBold.Sprint(label))

	// "error[E1001]" or "error[1/5]"
	if err.Code != "" {
		b.WriteString(f.palette.code.Sprintf("[%s]", err.Code))
	} else if prefix != "" {
		b.WriteString(f.palette.code.Sprintf("[%s]", prefix))
	}

	b.WriteString(f.palette.err.Sprint(": "))
	b.WriteString(err.Message)
	b.WriteString("\n")
}

func (f *Formatter) writeLocation(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if err.Line == 0 && err.Filename == "" {
		return
	}
	loc := ""
	if err.Filename != "" {
		loc = err.Filename
		if err.Line > 0 {
			loc += fmt.Sprintf(":%d:%d", err.Line, err.Column)
		}
	} else if err.Line > 0 {
		loc = fmt.Sprintf("%d:%d", err.Line, err.Column)
	}
	b.WriteString(strings.Repeat(" ", lineNumWidth))
	b.WriteString(f.palette.location.Sprint("-->"))
	b.WriteString(" ")
	b.WriteString(f.palette.location.Sprint(loc))
	b.WriteString("\n")
}

func (f *Formatter) writeSource(b *strings.Builder, err *FormattedError, lineNumWidth int) {
	if len(err.SourceLines) == 0 {
		return
	}
	padding := strings.Repeat(" ", lineNumWidth)

	b.WriteString(padding)
	b.WriteString(f.palette.lineNum.Sprint(" |"))
	b.WriteString("\n")

	for _, line := range err.SourceLines {
		b.WriteString(f.palette.lineNum.Sprintf("%*d", lineNumWidth, line.Number))
		b.WriteString(f.palette.lineNum.Sprint(" | "))
		b.WriteString(f.palette.source.Sprint(line.Text))
		b.WriteString("\n")

		if !line.IsMain || err.Column <= 0 {
			continue
		}
		b.WriteString(padding)
		b.WriteString(f.palette.lineNum.Sprint(" | "))
		b.WriteString(strings.Repeat(" ", err.Column-1))
		caretLen := 1
		if err.EndColumn > err.Column {
			caretLen = err.EndColumn - err.Column + 1
		}
		b.WriteString(f.palette.caret.Sprint(strings.Repeat("^", caretLen)))
		b.WriteString("\n")
	}
}

func (f *Formatter) writeTrailer(b *strings.Builder, label string, c *color.Color, text string, lineNumWidth int, gap bool) {
	padding := strings.Repeat(" ", lineNumWidth)
	if gap {
		b.WriteString(padding)
		b.WriteString(f.palette.lineNum.Sprint(" |"))
		b.WriteString("\n")
	}
	b.WriteString(padding)
	b.WriteString(f.palette.lineNum.Sprint(" = "))
	b.WriteString(c.Sprint(label))
	b.WriteString(text)
	b.WriteString("\n")
}

// FormatMultiple formats multiple errors with consistent styling.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return f.Format(errs[0])
	}

	var b strings.Builder
	total := len(errs)
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, total)))
	}
	b.WriteString("\n")
	b.WriteString(f.palette.errBold.Sprintf("found %d errors", total))
	b.WriteString("\n")
	return b.String()
}
