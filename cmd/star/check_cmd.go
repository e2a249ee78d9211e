package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starlang/star"
	"github.com/starlang/star/lsp"
)

// errCheckFailed is returned once diagnostics were already reported, so main
// only needs to set the exit status.
var errCheckFailed = errors.New("check failed")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Report diagnostics without printing the tree",
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
			asJSON, err := isJSONOutput()
			if err != nil {
				return err
			}
			_, parseErr := star.Parse(src.code, opts...)
			out := cmd.OutOrStdout()
			if asJSON {
				if err := printJSON(out, lsp.Diagnostics(parseErr)); err != nil {
					return err
				}
				if parseErr != nil {
					return errCheckFailed
				}
				return nil
			}
			if parseErr != nil {
				return reportErrors(cmd, parseErr)
			}
			name := src.name
			if name == "" {
				name = "<code>"
			}
			fmt.Fprintf(out, "%s %s\n", green("ok"), name)
			return nil
		},
	}
}
