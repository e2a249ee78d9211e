package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E0xxx: Lexical errors
//   - E1xxx: Parse errors
type ErrorCode string

const (
	// Lexical errors (E0xxx)
	E0001 ErrorCode = "E0001" // Invalid character
	E0002 ErrorCode = "E0002" // Unterminated string literal
	E0003 ErrorCode = "E0003" // Unexpected closing delimiter
	E0004 ErrorCode = "E0004" // Mismatched closing delimiter
	E0005 ErrorCode = "E0005" // Unclosed delimiter

	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unexpected end of input
	E1003 ErrorCode = "E1003" // Undefined directive
	E1004 ErrorCode = "E1004" // No default constructor
	E1005 ErrorCode = "E1005" // No default indexer
	E1006 ErrorCode = "E1006" // Operator without definition
	E1007 ErrorCode = "E1007" // Invalid directive
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E0001: "invalid character",
	E0002: "unterminated string literal",
	E0003: "unexpected closing delimiter",
	E0004: "mismatched closing delimiter",
	E0005: "unclosed delimiter",

	E1001: "unexpected token",
	E1002: "unexpected end of input",
	E1003: "undefined directive",
	E1004: "no default constructor",
	E1005: "no default indexer",
	E1006: "operator without definition",
	E1007: "invalid directive",
	E1009: "maximum nesting depth exceeded",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '0':
		return "lexical"
	case '1':
		return "parse"
	default:
		return "unknown"
	}
}
