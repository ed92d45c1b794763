package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/aurorashell/internal/service/session"
)

// InterruptExitCode is the conventional 128+SIGINT status.
const InterruptExitCode = 130

func main() {
	os.Exit(run(Execute, os.Stdout, os.Stderr))
}

func run(execute func(context.Context) error, stdout, stderr io.Writer) int {
	if err := execute(context.Background()); err != nil {
		if session.IsInterrupted(err) {
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, session.Terminated)
			return InterruptExitCode
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
