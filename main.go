// main is the entry point for the gitplots CLI.
package main

import (
	"github.com/huangsam/gitplots/cmd"
	"github.com/huangsam/gitplots/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run gitplots", err)
	}
}
