package lsp

import (
	stderrors "errors"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/jdbaldry/go-language-server-protocol/lsp/protocol"

	"github.com/starlang/star/lexer"
	"github.com/starlang/star/parser"
	"github.com/starlang/star/token"
)

// Source is reported as the origin of every diagnostic.
const Source = "star"

// Diagnostics converts a pipeline error into LSP diagnostics. Lexical errors
// combined into one value produce one diagnostic each. A nil error produces
// an empty, non-nil slice so that publishing it clears the client's list.
func Diagnostics(err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}
	var errs []error
	var multi *multierror.Error
	if stderrors.As(err, &multi) {
		errs = multi.Errors
	} else {
		errs = []error{err}
	}
	for _, e := range errs {
		diagnostics = append(diagnostics, diagnostic(e))
	}
	return diagnostics
}

func diagnostic(err error) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Severity: protocol.SeverityError,
		Source:   Source,
		Message:  err.Error(),
	}
	var lexErr *lexer.Error
	var parseErr *parser.Error
	switch {
	case stderrors.As(err, &parseErr):
		d.Code = string(parseErr.Code)
		d.Message = parseErr.Message
		d.Range = tokenRange(parseErr.Token, parseErr.SourceLine)
	case stderrors.As(err, &lexErr):
		d.Code = string(lexErr.Code)
		d.Message = lexErr.Message
		start := position(lexErr.Position, lexErr.SourceLine)
		d.Range = protocol.Range{Start: start, End: protocol.Position{Line: start.Line, Character: start.Character + 1}}
	}
	return d
}

// tokenRange returns the range covered by tok on its first line.
func tokenRange(tok token.Extended, line string) protocol.Range {
	start := position(tok.Position, line)
	width := utf8.RuneCountInString(tok.Text)
	if tok.HasNewline() || width == 0 {
		width = 1
	}
	end := tok.Position
	end.Column += width
	return protocol.Range{Start: start, End: position(end, line)}
}

// position converts a token position to an LSP position. LSP columns count
// UTF-16 code units while token columns count runes.
func position(pos token.Position, line string) protocol.Position {
	character := 0
	col := 0
	for _, r := range line {
		if col == pos.Column {
			break
		}
		character += utf16.RuneLen(r)
		col++
	}
	character += pos.Column - col
	return protocol.Position{Line: uint32(pos.Line), Character: uint32(character)}
}
