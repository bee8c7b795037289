package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prequel-dev/pedid/cmd/pedid/internal/ops"
)

func main() {

	kong.Parse(
		&ops.CLI,
		kong.Name("pedid"),
		kong.Description("Report or rewrite the physical dimensions recorded in an EDID blob."),
		kong.UsageOnError(),
	)

	if err := ops.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pedid: %v\n", err)
		os.Exit(ops.ExitCode(err))
	}
}
