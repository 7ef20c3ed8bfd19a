// Package main provides the entry point for the ai-wallet CLI application.
package main

import (
	"fmt"
	"os"

	"fjacquet/ai-wallet/cmd/budget"
	"fjacquet/ai-wallet/cmd/chat"
	"fjacquet/ai-wallet/cmd/export"
	"fjacquet/ai-wallet/cmd/root"
	"fjacquet/ai-wallet/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
