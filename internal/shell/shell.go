// Package shell implements a line-oriented command interpreter for
// inspecting frames and their successors.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/bitframe/internal/board"
	"github.com/hailam/bitframe/internal/crosscheck"
	"github.com/hailam/bitframe/internal/render"
	"github.com/hailam/bitframe/internal/storage"
)

// Shell reads commands from in and writes results to out.
type Shell struct {
	in    io.Reader
	out   io.Writer
	frame board.Frame

	// Squares marked by d, svg and png
	overlay board.Bitboard

	// Optional run store; nil disables save and runs
	store *storage.Storage
}

// New creates a shell positioned on the demo frame.
func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:    in,
		out:   out,
		frame: board.DemoFrame(),
	}
}

// WithStorage attaches a run store.
func (s *Shell) WithStorage(st *storage.Storage) *Shell {
	s.store = st
	return s
}

// Frame returns the current frame.
func (s *Shell) Frame() board.Frame {
	return s.frame
}

// Run processes commands until quit or end of input.
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "position":
			s.handlePosition(args)
		case "d":
			fmt.Fprint(s.out, s.frame.OverlayString(s.overlay))
		case "overlay":
			s.handleOverlay(args)
		case "bits":
			s.handleBits(args)
		case "moves":
			s.handleMoves(args)
		case "succ":
			s.handleSuccessors(args)
		case "count":
			s.handleCount(args)
		case "perft":
			s.handlePerft(args)
		case "verify":
			s.handleVerify()
		case "svg", "png":
			s.handleImage(cmd, args)
		case "save":
			s.handleSave(args)
		case "runs":
			s.handleRuns()
		case "quit":
			return nil
		default:
			fmt.Fprintf(s.out, "unknown command: %s\n", cmd)
		}
	}
	return scanner.Err()
}

// handlePosition sets up a frame.
// Formats:
//   - position startpos
//   - position demo
//   - position empty
//   - position placement <placement> [fen fields...]
func (s *Shell) handlePosition(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "error: position needs an argument")
		return
	}

	switch args[0] {
	case "startpos":
		s.frame = board.StartFrame()
	case "demo":
		s.frame = board.DemoFrame()
	case "empty":
		s.frame = board.Frame{}
	case "placement", "fen":
		f, err := board.ParsePlacement(strings.Join(args[1:], " "))
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		s.frame = f
	default:
		fmt.Fprintf(s.out, "error: unknown position %q\n", args[0])
	}
}

// parseSide reads the optional side argument.
func (s *Shell) parseSide(args []string) (board.Side, bool) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	side, ok := board.ParseSide(name)
	if !ok {
		fmt.Fprintf(s.out, "error: unknown side %q\n", name)
	}
	return side, ok
}

// handleOverlay sets the marked squares; no arguments clears them.
func (s *Shell) handleOverlay(args []string) {
	bb, err := board.ParseSquareSet(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.overlay = bb
}

// handleBits prints an integer as a raw bit pattern.
func (s *Shell) handleBits(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "error: bits needs a number")
		return
	}
	n, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, board.Bitboard(n).String())
}

func (s *Shell) handleMoves(args []string) {
	side, ok := s.parseSide(args)
	if !ok {
		return
	}
	moves := s.frame.GenerateMoves(side)
	names := make([]string, 0, moves.Len())
	for _, m := range moves.Slice() {
		names = append(names, m.Format(side))
	}
	fmt.Fprintln(s.out, strings.Join(names, " "))
}

func (s *Shell) handleSuccessors(args []string) {
	side, ok := s.parseSide(args)
	if !ok {
		return
	}
	moves := s.frame.GenerateMoves(side)
	for i, next := range s.frame.Successors(side) {
		fmt.Fprintf(s.out, "%s\n%s\n", moves.Get(i).Format(side), next)
	}
}

func (s *Shell) handleCount(args []string) {
	side, ok := s.parseSide(args)
	if !ok {
		return
	}
	fmt.Fprintln(s.out, len(s.frame.Successors(side)))
}

// handlePerft counts leaf frames, alternating sides.
func (s *Shell) handlePerft(args []string) {
	depth := 3
	if len(args) > 0 {
		d, err := strconv.Atoi(args[0])
		if err != nil || d < 0 {
			fmt.Fprintf(s.out, "error: invalid depth %q\n", args[0])
			return
		}
		depth = d
		args = args[1:]
	}
	side, ok := s.parseSide(args)
	if !ok {
		return
	}

	start := time.Now()
	nodes := board.Perft(s.frame, side, depth)
	elapsed := time.Since(start)

	fmt.Fprintf(s.out, "Nodes: %d\n", nodes)
	fmt.Fprintf(s.out, "Time: %v\n", elapsed)
}

func (s *Shell) handleVerify() {
	mismatches := crosscheck.Frame(s.frame)
	for _, m := range mismatches {
		fmt.Fprintln(s.out, m)
	}
	if len(mismatches) == 0 {
		fmt.Fprintln(s.out, "rooks ok")
	}
}

// handleImage writes the current frame to a file as SVG or PNG.
func (s *Shell) handleImage(kind string, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "error: %s needs a path\n", kind)
		return
	}
	path := args[0]

	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	if kind == "svg" {
		err = render.WriteSVG(file, s.frame, render.Options{Overlay: s.overlay})
	} else {
		err = render.WritePNG(file, s.frame, render.Options{Overlay: s.overlay})
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "wrote %s\n", path)
}

func (s *Shell) handleSave(args []string) {
	if s.store == nil {
		fmt.Fprintln(s.out, "error: no storage")
		return
	}
	side, ok := s.parseSide(args)
	if !ok {
		return
	}
	run, err := s.store.RecordRun(s.frame, side)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "saved %s (%d successors)\n", run.ID, len(run.Successors))
}

func (s *Shell) handleRuns() {
	if s.store == nil {
		fmt.Fprintln(s.out, "error: no storage")
		return
	}
	runs, err := s.store.ListRuns()
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	for _, r := range runs {
		fmt.Fprintf(s.out, "%s %s %s %d\n", r.ID, r.Side, r.Root, len(r.Successors))
	}
}
