// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import "fmt"

// knownCommands are the names offered as suggestions for a mistyped command.
var knownCommands = []string{"query", "list", "help", "version"}

// maxLengthDifference bounds how far a typo's length may stray from the
// command it is matched to.
const maxLengthDifference = 2

// suggestCommand returns the first known command that starts with the same
// letter as input and whose length is within maxLengthDifference, or "".
func suggestCommand(input string, commands []string) string {
	if input == "" {
		return ""
	}
	for _, c := range commands {
		if c == "" || c[0] != input[0] {
			continue
		}
		diff := len(c) - len(input)
		if diff < 0 {
			diff = -diff
		}
		if diff <= maxLengthDifference {
			return c
		}
	}
	return ""
}

func unknownCommandError(input string, commands []string) error {
	if match := suggestCommand(input, commands); match != "" {
		return fmt.Errorf("unknown command '%s'. Did you mean '%s'?", input, match)
	}
	return fmt.Errorf("unknown command '%s'. Try using 'help' to get a list of the commands", input)
}
