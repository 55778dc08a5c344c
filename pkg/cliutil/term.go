// Copyright (C) 2020  Ambassador Labs (for Telepresence)
// Copyright (C) 2021-2022  Ambassador Labs (for ocibuild and pyver)
//
// SPDX-License-Identifier: Apache-2.0
//
// Based on
// https://github.com/telepresenceio/telepresence/blob/b6dfa04ff014915b47386191cc3d8b1352522fea/pkg/client/cli/command_group.go#L35-L63

package cliutil

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// defaultTerminalWidth is used when stdout is a terminal but its size can't be determined.
const defaultTerminalWidth = 80

// GetTerminalWidth returns the width of the terminal that you should wrap text to, or 0 if
// text should not be wrapped.
func GetTerminalWidth() int {
	return terminalWidth(os.Getenv("COLUMNS"), int(os.Stdout.Fd()))
}

func terminalWidth(columnsEnv string, fd int) int {
	// Copyright note: This code was originally written by LukeShu for Telepresence.

	// An explicit COLUMNS wins, even when output is redirected.  "COLUMNS=0" disables wrapping.
	if cols, err := strconv.Atoi(columnsEnv); err == nil && cols >= 0 {
		return cols
	}

	if !term.IsTerminal(fd) {
		// Piped help output is not wrapped.
		return 0
	}
	if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
		return cols
	}
	return defaultTerminalWidth
}
