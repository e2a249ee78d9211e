package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/starlang/star"
	"github.com/starlang/star/errors"
	"github.com/starlang/star/stdlib"
	"github.com/starlang/star/token"
)

var (
	kindStyle  = color.New(color.FgCyan, color.Bold).SprintFunc()
	roleStyle  = color.New(color.FgMagenta).SprintFunc()
	mutedStyle = color.New(color.FgHiBlack).SprintFunc()
)

// TokenJSON is the JSON form of a token.
type TokenJSON struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text"`
	Offset  int      `json:"offset"`
	Line    int      `json:"line,omitempty"`
	Column  int      `json:"column,omitempty"`
	Skipped bool     `json:"skipped,omitempty"`
	Roles   []string `json:"roles,omitempty"`
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			opts, err := pipelineOptions(src.name)
			if err != nil {
				return err
			}
			tokens, lexErr := star.Tokenize(src.code, opts...)
			out := cmd.OutOrStdout()
			asJSON, err := isJSONOutput()
			if err != nil {
				return err
			}
			if asJSON {
				items := make([]TokenJSON, len(tokens))
				for i, tok := range tokens {
					items[i] = TokenJSON{Kind: string(tok.Kind), Text: tok.Text, Offset: tok.Offset}
				}
				if err := printJSON(out, items); err != nil {
					return err
				}
			} else {
				for _, tok := range tokens {
					fmt.Fprintf(out, "%s %s %q\n", mutedStyle(fmt.Sprintf("%4d", tok.Offset)), kindStyle(tok.Kind), tok.Text)
				}
			}
			return reportErrors(cmd, lexErr)
		},
	}
}

func newScopeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scope [file]",
		Short: "Print tokens with their positions and scope roles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _ := cmd.Flags().GetBool("list")
			if list {
				return printScope(cmd)
			}
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			opts, err := pipelineOptions(src.name)
			if err != nil {
				return err
			}
			tokens, lexErr := star.Resolve(src.code, opts...)
			out := cmd.OutOrStdout()
			asJSON, err := isJSONOutput()
			if err != nil {
				return err
			}
			if asJSON {
				items := make([]TokenJSON, len(tokens))
				for i, tok := range tokens {
					items[i] = extendedJSON(tok)
				}
				if err := printJSON(out, items); err != nil {
					return err
				}
			} else {
				for _, tok := range tokens {
					printExtended(out, tok)
				}
			}
			return reportErrors(cmd, lexErr)
		},
	}
	cmd.Flags().Bool("list", false, "List the scope descriptor instead of resolving code")
	return cmd
}

func extendedJSON(tok token.Extended) TokenJSON {
	return TokenJSON{
		Kind:    string(tok.Kind),
		Text:    tok.Text,
		Offset:  tok.Offset,
		Line:    tok.Position.LineNumber(),
		Column:  tok.Position.ColumnNumber(),
		Skipped: tok.Skipped,
		Roles:   roleNames(tok),
	}
}

func roleNames(tok token.Extended) []string {
	var roles []string
	if tok.IsIrrelevant() {
		roles = append(roles, "irrelevant")
	}
	if tok.IsOperator() {
		roles = append(roles, "operator")
	}
	if tok.IsCommand() {
		roles = append(roles, "command")
	}
	return roles
}

func printExtended(w io.Writer, tok token.Extended) {
	roles := ""
	if names := roleNames(tok); len(names) > 0 {
		roles = " " + roleStyle("["+strings.Join(names, ", ")+"]")
	}
	fmt.Fprintf(w, "%s %s %q%s\n", mutedStyle(fmt.Sprintf("%7s", tok.Position)), kindStyle(tok.Kind), tok.Text, roles)
}

// printScope prints the scope descriptor the pipeline starts with.
func printScope(cmd *cobra.Command) error {
	extra, err := configScope()
	if err != nil {
		return err
	}
	s := stdlib.Scope().Merge(extra)
	asJSON, err := isJSONOutput()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if asJSON {
		entries := map[string]string{}
		for name, e := range s {
			entries[name] = e.String()
		}
		return printJSON(out, entries)
	}
	for _, name := range s.Names() {
		fmt.Fprintf(out, "%-6s %s\n", name, roleStyle(s[name]))
	}
	return nil
}

// reportErrors renders err to stderr. Lexical errors do not stop the tokens
// and scope commands, but the exit status reflects them.
func reportErrors(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(cmd.ErrOrStderr(), errors.Render(err, useColor(cmd.ErrOrStderr())))
	return errCheckFailed
}
