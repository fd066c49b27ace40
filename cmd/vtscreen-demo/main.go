// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vtscreen-demo/main.go
// Summary: A minimal host program exercising screen.Screen end to end:
// spawns a shell under a pty, decodes its output through vtparse into
// Commands, and prints the resulting screen text to stdout once the
// shell's output ends. Not part of the model itself — a worked example of
// wiring the pty/process-supervisor and byte-parser "external
// collaborators" spec.md calls out as out of scope for the model.
// Grounded on: apps/texelterm/parser/vterm.go's embedder wiring pattern
// (callbacks driving a real pty session), adapted from a TUI widget
// host into this package's plain io.Copy-based demo.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/texelcore/vtscreen/screen"
	"github.com/texelcore/vtscreen/vtparse"
)

func main() {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		log.Fatal("vtscreen-demo: stdin is not a terminal")
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		log.Fatalf("vtscreen-demo: pty.Start: %v", err)
	}
	defer ptmx.Close()

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("vtscreen-demo: term.MakeRaw: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdin.Fd())); err == nil {
		width, height = w, h
	}
	_ = pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(height), Cols: uint16(width)})

	scr := screen.NewScreen(screen.WindowSize{Rows: height, Columns: width}, screen.WithCallbacks(screen.Callbacks{
		Reply: func(data []byte) { _, _ = ptmx.Write(data) },
		Bell:  func() { fmt.Fprint(os.Stderr, "\a") },
		OnWindowTitleChanged: func(title string) {
			fmt.Fprintf(os.Stderr, "\x1b]0;%s\x07", title)
		},
	}))

	dec := vtparse.New(scr.Apply)

	go watchResize(ptmx, scr)

	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()

	if _, err := io.Copy(dec, ptmx); err != nil && err != io.EOF {
		log.Printf("vtscreen-demo: pty read: %v", err)
	}

	fmt.Print(scr.RenderText())
}

// watchResize polls the controlling terminal's size and propagates
// changes to both the pty and the Screen. A real embedder would do this
// off SIGWINCH; go-isatty/golang.org/x/term make direct size queries
// straightforward enough that a short poll loop keeps this demo small.
func watchResize(ptmx *os.File, scr *screen.Screen) {
	last := scr.Size()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		w, h, err := term.GetSize(int(os.Stdin.Fd()))
		if err != nil {
			continue
		}
		if w == last.Columns && h == last.Rows {
			continue
		}
		last = screen.WindowSize{Rows: h, Columns: w}
		_ = pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
		scr.Resize(last)
	}
}
