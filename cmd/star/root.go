package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "star",
		Short: "Developer tools for the star language front end",
		Long: `star runs the front end of the star language over a source file and shows
the result of each stage:

  tokens  - the raw token stream
  scope   - tokens with their scope roles
  ast     - the expression tree
  check   - diagnostics only`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
			processGlobalFlags()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.star.yaml)")
	flags.StringP("code", "c", "", "Code to process")
	flags.Bool("stdin", false, "Read code from stdin")
	flags.StringP("output", "o", "", "Output format: text or json")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Int("max-depth", 0, "Maximum nesting depth of the parser")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	for _, name := range []string{"code", "stdin", "output", "no-color", "max-depth", "log-level"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
	root.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newTokensCmd(),
		newScopeCmd(),
		newAstCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetString("output") == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "star %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
			fmt.Fprintf(out, "  go:      %s\n", runtime.Version())
			return nil
		},
	}
}

// initConfig reads the config file and STAR_ environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".star")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("star")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger := newLogger()
		logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	} else if cfgFile != "" {
		fatal(err)
	}
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	if viper.GetBool("no-color") || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}

// newLogger returns a console logger writing to stderr at the configured
// level.
func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
