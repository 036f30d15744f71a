package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/usetempo/agentenv"
)

// printResult renders a detection for humans. Color is dropped when the
// output is not a terminal, when NO_COLOR or the config asks for plain
// output — and when an agent IS detected, since then the reader is by
// definition a program.
func printResult(w io.Writer, result *agentenv.Result, noColor bool) {
	if noColor || result != nil || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if result == nil {
		fmt.Fprintln(w, "No coding agent detected.")
		return
	}

	label := color.New(color.FgYellow)
	if result.Confidence == agentenv.ConfidenceHigh {
		label = color.New(color.FgGreen)
	}
	fmt.Fprintf(w, "%s (%s confidence)\n", label.Sprint(result.Tool), result.Confidence)
	for _, s := range result.Signals {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}
