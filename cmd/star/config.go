package main

import (
	"github.com/spf13/viper"

	"github.com/starlang/star"
	"github.com/starlang/star/scope"
)

// operatorConfig is the config file entry of an extra scope operator:
//
//	operators:
//	  then:
//	    ignores_line_before: true
type operatorConfig struct {
	IgnoresLineBefore bool `mapstructure:"ignores_line_before"`
	IgnoresLineAfter  bool `mapstructure:"ignores_line_after"`
}

// configScope returns the scope entries declared in the config.
func configScope() (scope.Scope, error) {
	var operators map[string]operatorConfig
	if err := viper.UnmarshalKey("operators", &operators); err != nil {
		return nil, err
	}
	s := scope.Scope{}
	for name, op := range operators {
		s[name] = scope.Operator(op.IgnoresLineBefore, op.IgnoresLineAfter)
	}
	for _, name := range viper.GetStringSlice("commands") {
		s[name] = scope.Command()
	}
	return s, nil
}

// pipelineOptions returns the options of the star pipeline built from flags
// and config.
func pipelineOptions(filename string) ([]star.Option, error) {
	s, err := configScope()
	if err != nil {
		return nil, err
	}
	opts := []star.Option{
		star.WithLogger(newLogger()),
		star.WithScope(s),
	}
	if filename != "" {
		opts = append(opts, star.WithFilename(filename))
	}
	if depth := viper.GetInt("max-depth"); depth > 0 {
		opts = append(opts, star.WithMaxDepth(depth))
	}
	return opts, nil
}
