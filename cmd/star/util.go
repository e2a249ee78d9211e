package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

var outputFormatsCompletion = []string{"json", "text"}

func printError(msg string) {
	fmt.Fprintln(os.Stderr, red(msg))
}

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = msg.Error()
	default:
		s = fmt.Sprintf("%v", msg)
	}
	printError(s)
	os.Exit(1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor reports whether output written to w should be colored.
func useColor(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// source holds the code to process and the name it is reported under.
type source struct {
	name string
	code string
}

// readSource determines the code to process. There are three possibilities:
// 1. --code <code>
// 2. --stdin (read code from stdin)
// 3. path as args[0]
func readSource(cmd *cobra.Command, args []string) (source, error) {
	codeSet := viper.GetString("code") != ""
	stdinSet := viper.GetBool("stdin")
	pathSupplied := len(args) > 0

	count := 0
	for _, set := range []bool{codeSet, stdinSet, pathSupplied} {
		if set {
			count++
		}
	}
	if count > 1 {
		return source{}, errors.New("multiple input sources specified")
	}
	if count == 0 {
		return source{}, errors.New("no input provided")
	}

	switch {
	case stdinSet:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return source{}, err
		}
		return source{name: "<stdin>", code: string(data)}, nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return source{}, err
		}
		return source{name: args[0], code: string(data)}, nil
	}
	return source{code: viper.GetString("code")}, nil
}

// printJSON writes v as indented JSON, colored when w is a terminal.
func printJSON(w io.Writer, v any) error {
	var data []byte
	var err error
	if useColor(w) {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func isJSONOutput() (bool, error) {
	switch format := viper.GetString("output"); format {
	case "", "text":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, fmt.Errorf("unknown output format: %s", format)
	}
}
