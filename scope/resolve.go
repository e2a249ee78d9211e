package scope

import (
	"github.com/starlang/star/token"
)

// Resolve extends every token with its source position and scope roles. The
// result has exactly one entry per input token, in the same order.
//
// Whitespace is marked irrelevant when it cannot end a statement:
//   - at the very start or end of the stream
//   - right after an opening bracket, a comma or a semicolon
//   - right before a closing bracket, a comma or a semicolon
//   - before an operator that ignores the line before it
//   - after an operator that ignores the line before or after it
//
// An operator continuing the previous line joins two operands, so a line
// break after it cannot end the statement either.
func Resolve(tokens []token.Token, root Scope) []token.Extended {
	stack := NewStack(root)
	result := make([]token.Extended, len(tokens))
	pos := token.Position{}
	joinNext := false

	for i, tok := range tokens {
		ext := token.Extended{
			Token:    tok,
			Skipped:  i > 0 && tokens[i-1].Kind == token.SPACE,
			Position: pos,
		}
		joinsLine := joinNext
		joinNext = false

		switch tok.Kind {
		case token.LBRACE:
			stack.Push()
		case token.RBRACE:
			stack.Pop()
		case token.IDENT:
			if e, ok := stack.Get(tok.Text); ok {
				switch e.Kind {
				case CommandElement:
					ext.Roles |= token.Command
				case OperatorElement:
					ext.Roles |= token.Operator
					if e.IgnoresLineBefore {
						markIrrelevant(result, i-1)
					}
					joinNext = e.IgnoresLineAfter || e.IgnoresLineBefore
				}
			}
		case token.SPACE:
			if joinsLine || i == 0 || i == len(tokens)-1 || continuesAfter(tokens[i-1].Kind) {
				ext.Roles |= token.Irrelevant
			}
		}
		if tok.Kind.IsCloser() || tok.Kind == token.COMMA || tok.Kind == token.SEMICOLON {
			markIrrelevant(result, i-1)
		}

		result[i] = ext
		pos = pos.AdvanceText(tok.Text)
	}
	return result
}

// continuesAfter reports whether a statement always continues after a token
// of the given kind.
func continuesAfter(k token.Kind) bool {
	return k.IsOpener() || k == token.COMMA || k == token.SEMICOLON
}

func markIrrelevant(tokens []token.Extended, i int) {
	if i < 0 || tokens[i].Kind != token.SPACE {
		return
	}
	tokens[i].Roles |= token.Irrelevant
}
