package main

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// rawTerminal puts the terminal behind file into raw (unbuffered,
// non-echoing) mode and returns its restore function. Non-terminal input
// (piped or redirected) is left untouched.
func rawTerminal(file *os.File) (restore func(), err error) {
	if !term.IsTerminal(int(file.Fd())) {
		restore = func() {}
		return
	}

	var saved unix.Termios
	if err = termios.Tcgetattr(file.Fd(), &saved); err != nil {
		return
	}

	raw := saved
	raw.Lflag &^= unix.ICANON | unix.ECHO

	if err = termios.Tcsetattr(file.Fd(), termios.TCSANOW, &raw); err != nil {
		return
	}

	restore = func() {
		termios.Tcsetattr(file.Fd(), termios.TCSANOW, &saved)
	}

	return
}
