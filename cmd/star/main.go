package main

import (
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if err != errCheckFailed {
			printError(err.Error())
		}
		os.Exit(1)
	}
}
