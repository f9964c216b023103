//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package main

// Without termios we cannot tell, so assume input is piped and skip the
// prompt.
func isTerminal(fd int) bool {
	return false
}
