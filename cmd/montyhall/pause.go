package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const pausePrompt = "\n When ready, please press any alphanumerical or modifier key to continue."

// waitForKey blocks until a key is pressed on an interactive terminal.
// Input that is not a terminal (pipes, files, tests) returns immediately.
func waitForKey(in io.Reader, out io.Writer) error {
	f, ok := in.(*os.File)
	if !ok || !isTerminal(f.Fd()) {
		return nil
	}

	fmt.Fprint(out, pausePrompt)
	defer fmt.Fprintln(out)

	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		// No raw mode on this terminal (Cygwin ptys); wait for Enter instead.
		_, err = bufio.NewReader(f).ReadString('\n')
		return ignoreEOF(err)
	}
	defer term.Restore(fd, state)

	var b [1]byte
	_, err = f.Read(b[:])
	return ignoreEOF(err)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
