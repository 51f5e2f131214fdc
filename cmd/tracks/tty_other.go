//go:build !unix

package main

import "os"

func terminalSize(*os.File) (cols, rows int, ok bool) {
	return 0, 0, false
}

func isTerminal(*os.File) bool {
	return false
}
