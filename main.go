package main

import (
	"github.com/sprintertech/bridge-orchestrator/cli"
)

func main() {
	cli.Execute()
}
