package main

import (
	"os"

	"github.com/dock-cli/dock/src/cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
