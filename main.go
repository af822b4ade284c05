// Bitframe prints a frame and every frame reachable from it in one move.
//
// Usage:
//
//	bitframe [flags] [N]
//
// With a positional integer N, bitframe prints N as an 8x8 bit pattern
// and exits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/hailam/bitframe/internal/board"
	"github.com/hailam/bitframe/internal/crosscheck"
	"github.com/hailam/bitframe/internal/render"
	"github.com/hailam/bitframe/internal/storage"
)

var (
	placement = flag.String("placement", "", "FEN placement of the root frame (default: demo frame)")
	sideName  = flag.String("side", "mover", "side to generate for: mover or opponent")
	svgPath   = flag.String("svg", "", "write an SVG diagram of the root frame")
	pngPath   = flag.String("png", "", "write a PNG diagram of the root frame")
	overlay   = flag.String("overlay", "", "squares to mark on the root frame, e.g. c3,d4,c5 (default: c3,d4,c5 on the demo frame)")
	verify    = flag.Bool("verify", false, "crosscheck rook moves against dragontoothmg")
	dbPath    = flag.String("db", "", "record the run in the badger database at this directory (env BITFRAME_DB)")
)

func main() {
	flag.Parse()

	if flag.NArg() > 0 {
		n, err := strconv.ParseUint(flag.Arg(0), 0, 64)
		if err != nil {
			log.Fatalf("invalid bit pattern %q: %v", flag.Arg(0), err)
		}
		fmt.Print(board.Bitboard(n).String())
		return
	}

	side, ok := board.ParseSide(*sideName)
	if !ok {
		log.Fatalf("unknown side %q", *sideName)
	}

	root, marks := board.DemoFrame(), board.DemoOverlay
	if *placement != "" {
		f, err := board.ParsePlacement(*placement)
		if err != nil {
			log.Fatal(err)
		}
		root, marks = f, board.Empty
	}
	if *overlay != "" {
		bb, err := board.ParseSquareSet(*overlay)
		if err != nil {
			log.Fatalf("overlay: %v", err)
		}
		marks = bb
	}

	fmt.Println(root.OverlayString(marks))
	for _, next := range root.Successors(side) {
		fmt.Println(next)
	}

	if *svgPath != "" {
		if err := writeImage(*svgPath, root, marks, render.WriteSVG); err != nil {
			log.Fatalf("svg: %v", err)
		}
	}
	if *pngPath != "" {
		if err := writeImage(*pngPath, root, marks, render.WritePNG); err != nil {
			log.Fatalf("png: %v", err)
		}
	}

	if *verify {
		mismatches := crosscheck.Frame(root)
		for _, m := range mismatches {
			log.Printf("mismatch: %v", m)
		}
		if len(mismatches) > 0 {
			os.Exit(1)
		}
		log.Printf("rook moves agree with dragontoothmg")
	}

	dir := *dbPath
	if dir == "" {
		dir = os.Getenv("BITFRAME_DB")
	}
	if dir != "" {
		if err := record(dir, root, side); err != nil {
			log.Fatalf("storage: %v", err)
		}
	}
}

func writeImage(path string, f board.Frame, marks board.Bitboard, write func(w io.Writer, f board.Frame, opts render.Options) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file, f, render.Options{Overlay: marks}); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func record(dir string, f board.Frame, side board.Side) error {
	st, err := storage.Open(dir)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.RecordRun(f, side)
	if err != nil {
		return err
	}
	log.Printf("recorded run %s (%d successors)", run.ID, len(run.Successors))
	return nil
}
