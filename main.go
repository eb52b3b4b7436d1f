package main

import (
	"os"

	"ai_tool_directory/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
