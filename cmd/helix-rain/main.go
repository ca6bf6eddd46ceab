package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"golang.org/x/term"

	"github.com/lixenwraith/helix-rain/display"
	"github.com/lixenwraith/helix-rain/rain"
)

func main() {
	// Raw mode and the alternate screen are useless on a pipe; refuse
	// early with a readable message instead of tcell's failure string
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "helix-rain: stdout is not a terminal")
		os.Exit(1)
	}

	session, err := display.NewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "helix-rain: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before reporting, so the
	// stack trace lands on a sane screen instead of the alternate buffer
	defer func() {
		if r := recover(); r != nil {
			session.Close()
			fmt.Fprintf(os.Stderr, "\nhelix-rain crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer session.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	width, height := session.Size()
	scene := rain.NewScene(session.Screen(), width, height, rng)

	if err := scene.Run(); err != nil {
		session.Close()
		fmt.Fprintf(os.Stderr, "helix-rain: %v\n", err)
		os.Exit(1)
	}
}
