package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		name     string
		loc      SourceLocation
		expected string
	}{
		{
			name:     "with filename",
			loc:      SourceLocation{Filename: "main.star", Line: 10, Column: 5},
			expected: "main.star:10:5",
		},
		{
			name:     "without filename",
			loc:      SourceLocation{Line: 10, Column: 5},
			expected: "10:5",
		},
		{
			name:     "zero location",
			loc:      SourceLocation{},
			expected: "0:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.String())
		})
	}
	assert.True(t, SourceLocation{}.IsZero())
	assert.False(t, SourceLocation{Line: 1}.IsZero())
}

func TestErrorCode_Description(t *testing.T) {
	assert.Equal(t, "unexpected token", E1001.Description())
	assert.Equal(t, "unclosed delimiter", E0005.Description())
	assert.Equal(t, "unknown error", ErrorCode("E9999").Description())
	assert.Equal(t, "E1003", E1003.String())
}

func TestErrorCode_Category(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{E0001, "lexical"},
		{E0005, "lexical"},
		{E1001, "parse"},
		{E1009, "parse"},
		{ErrorCode("E9001"), "unknown"},
		{ErrorCode("E"), "unknown"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code.Category())
		})
	}
}

// Tests for suggest.go

func TestSuggestSimilar(t *testing.T) {
	candidates := []string{"print", "printf", "println", "sprint", "sprintf"}

	tests := []struct {
		name        string
		target      string
		candidates  []string
		wantAtLeast int // Min number of expected suggestions
		wantFirst   string
	}{
		{
			name:        "close match",
			target:      "prin",
			candidates:  candidates,
			wantAtLeast: 1,
			wantFirst:   "print",
		},
		{
			name:        "exact match excluded",
			target:      "print",
			candidates:  candidates,
			wantAtLeast: 2,
			wantFirst:   "printf",
		},
		{
			name:        "no close matches",
			target:      "xyz",
			candidates:  candidates,
			wantAtLeast: 0,
		},
		{
			name:        "empty target",
			target:      "",
			candidates:  candidates,
			wantAtLeast: 0,
		},
		{
			name:        "empty candidates",
			target:      "print",
			candidates:  []string{},
			wantAtLeast: 0,
		},
		{
			name:        "short word threshold",
			target:      "at",
			candidates:  []string{"as", "is", "it", "an"},
			wantAtLeast: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := SuggestSimilar(tt.target, tt.candidates)
			assert.GreaterOrEqual(t, len(suggestions), tt.wantAtLeast)
			if tt.wantAtLeast > 0 && tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, suggestions[0].Value)
			}
		})
	}
}

func TestSuggestWithin(t *testing.T) {
	names := []string{"=", "BindingPower", "FALSE", "InfixOperator", "MAX_BINDING_POWER", "TRUE", "boguss", "define"}

	got := SuggestWithin("bogus", names, MaxSuggestionDistance)
	require.NotEmpty(t, got)
	assert.Equal(t, Suggestion{Value: "boguss", Distance: 1}, got[0])

	got = SuggestWithin("infixoperator", names, MaxSuggestionDistance)
	assert.Empty(t, got, "exact case-insensitive matches are not suggestions")

	got = SuggestWithin("InfixOperatr", names, MaxSuggestionDistance)
	require.Len(t, got, 1)
	assert.Equal(t, "InfixOperator", got[0].Value)
}

func TestSuggestSimilar_MaxSuggestions(t *testing.T) {
	candidates := []string{"foo1", "foo2", "foo3", "foo4", "foo5"}
	suggestions := SuggestWithin("foo", candidates, MaxSuggestionDistance)
	assert.Len(t, suggestions, MaxSuggestions)
	// Ties are broken alphabetically.
	assert.Equal(t, "foo1", suggestions[0].Value)
	assert.Equal(t, "foo3", suggestions[2].Value)
}

func TestFormatSuggestions(t *testing.T) {
	tests := []struct {
		name        string
		suggestions []Suggestion
		expected    string
	}{
		{
			name:        "empty",
			suggestions: nil,
			expected:    "",
		},
		{
			name:        "single suggestion",
			suggestions: []Suggestion{{Value: "define", Distance: 1}},
			expected:    "did you mean 'define'?",
		},
		{
			name: "multiple suggestions",
			suggestions: []Suggestion{
				{Value: "TRUE", Distance: 1},
				{Value: "FALSE", Distance: 2},
			},
			expected: "similar options: 'TRUE', 'FALSE'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSuggestions(tt.suggestions))
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "adc", 1},
		{"abc", "abcd", 1},
		{"kitten", "sitting", 3},
		{"", "ąę", 2},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, editDistance(tt.a, tt.b))
		})
	}
}

// Tests for format.go

func TestNewFormatter(t *testing.T) {
	f := NewFormatter(true)
	assert.True(t, f.UseColor)

	f = NewFormatter(false)
	assert.False(t, f.UseColor)
}

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter(false)

	err := &FormattedError{
		Code:     E1003,
		Kind:     "parse error",
		Message:  `undefined directive "bogus"`,
		Filename: "test.star",
		Line:     10,
		Column:   5,
		SourceLines: []SourceLineEntry{
			{Number: 10, Text: "x = #bogus 1", IsMain: true},
		},
	}

	result := f.Format(err)
	assert.Contains(t, result, "parse error")
	assert.Contains(t, result, "[E1003]")
	assert.Contains(t, result, `undefined directive "bogus"`)
	assert.Contains(t, result, "test.star:10:5")
	assert.Contains(t, result, "x = #bogus 1")
	assert.Contains(t, result, "\n   |     ^\n")
}

func TestFormatter_FormatWithHintAndNote(t *testing.T) {
	f := NewFormatter(false)

	err := &FormattedError{
		Kind:    "error",
		Message: "undefined directive",
		Line:    5,
		Column:  1,
		Hint:    "Did you mean 'define'?",
		Note:    "directives are resolved while parsing",
	}

	result := f.Format(err)
	assert.Contains(t, result, "hint: Did you mean 'define'?")
	assert.Contains(t, result, "note: directives are resolved while parsing")
}

func TestFormatter_FormatNoLocation(t *testing.T) {
	f := NewFormatter(false)

	result := f.Format(&FormattedError{Kind: "error", Message: "something went wrong"})
	assert.Contains(t, result, "something went wrong")
	assert.False(t, strings.Contains(result, "-->"))
}

func TestFormatter_FormatMultiple(t *testing.T) {
	f := NewFormatter(false)

	assert.Equal(t, "", f.FormatMultiple(nil))

	single := []*FormattedError{{Kind: "error", Message: "test"}}
	assert.NotContains(t, f.FormatMultiple(single), "[1/1]")

	multiple := []*FormattedError{
		{Kind: "error", Message: "first error"},
		{Kind: "error", Message: "second error"},
	}
	result := f.FormatMultiple(multiple)
	assert.Contains(t, result, "[1/2]")
	assert.Contains(t, result, "[2/2]")
	assert.Contains(t, result, "found 2 errors")
}

func TestFormatter_FormatWithColor(t *testing.T) {
	err := &FormattedError{Code: E1001, Kind: "error", Message: "test error", Line: 1, Column: 1}

	colored := NewFormatter(true).Format(err)
	plain := NewFormatter(false).Format(err)
	assert.Contains(t, colored, "\x1b[")
	assert.NotContains(t, plain, "\x1b[")
}

func TestFormatter_FormatMultiCharUnderline(t *testing.T) {
	f := NewFormatter(false)

	err := &FormattedError{
		Kind:      "error",
		Message:   "operator without definition",
		Line:      5,
		Column:    3,
		EndColumn: 4,
		SourceLines: []SourceLineEntry{
			{Number: 5, Text: "a |> b", IsMain: true},
		},
	}
	assert.Contains(t, f.Format(err), "   |   ^^\n")
}

func TestFormatter_FormatLargeLineNumber(t *testing.T) {
	f := NewFormatter(false)

	err := &FormattedError{
		Kind:     "error",
		Message:  "test",
		Filename: "test.star",
		Line:     1000,
		Column:   5,
		SourceLines: []SourceLineEntry{
			{Number: 1000, Text: "some code", IsMain: true},
		},
	}
	assert.Contains(t, f.Format(err), "1000 | some code")
}

type formattable struct{ msg string }

func (f formattable) Error() string { return f.msg }

func (f formattable) ToFormatted() *FormattedError {
	return &FormattedError{Kind: "syntax error", Message: f.msg, Line: 1, Column: 1}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "", Render(nil, false))

	out := Render(formattable{msg: "bad"}, false)
	assert.True(t, strings.HasPrefix(out, "syntax error: bad\n"))

	out = Render(fmt.Errorf("plain"), false)
	assert.Equal(t, "error: plain\n", out)

	var merr *multierror.Error
	merr = multierror.Append(merr, formattable{msg: "one"}, fmt.Errorf("two"))
	out = Render(merr, false)
	assert.Contains(t, out, "syntax error[1/2]: one")
	assert.Contains(t, out, "error[2/2]: two")
	assert.Contains(t, out, "found 2 errors")
}
