package lexer

// isSpace matches the whitespace characters that coalesce into SPACE tokens.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\f', '\v', '\r', '\n':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isWordChar matches letters, digits and underscores. Digits may not start a
// word identifier.
func isWordChar(ch byte, first bool) bool {
	if isDigit(ch) {
		return !first
	}
	return isLetter(ch) || ch == '_'
}

// isOperatorChar matches the symbol alphabet of operator identifiers.
// Underscore may appear inside an operator but never start one.
func isOperatorChar(ch byte, first bool) bool {
	switch ch {
	case '!', '"', '$', '%', '&', '*', '+', '-', '.', '/', ':', '<', '=', '>', '?', '@', '\\', '^', '|', '~':
		return true
	case '_':
		return !first
	}
	return false
}

// isDirectiveChar matches the name of a directive, which runs up to
// whitespace or punctuation.
func isDirectiveChar(ch byte) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}', ',', ';', '\'':
		return false
	}
	return !isSpace(ch)
}
