// Command dsviz steps through a linked-list deque and instrumented sorts in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dsviz/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
