package storage

import (
	"errors"
	"os"
	"testing"

	"github.com/hailam/bitframe/internal/board"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordRun(t *testing.T) {
	s := openTest(t)
	f := board.DemoFrame()

	run, err := s.RecordRun(f, board.Mover)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if run.ID == "" || run.Side != "mover" || run.Root != f.Placement() || run.RootHash != f.Hash() {
		t.Errorf("unexpected run header: %+v", run)
	}
	if len(run.Successors) != 20 || len(run.Moves) != 20 || len(run.Hashes) != 20 {
		t.Fatalf("expected 20 successors, got %d", len(run.Successors))
	}
	if run.Moves[0] != "Rc4c1" {
		t.Errorf("first move %q", run.Moves[0])
	}

	t.Run("Load", func(t *testing.T) {
		got, err := s.LoadRun(run.ID)
		if err != nil {
			t.Fatalf("LoadRun failed: %v", err)
		}
		if got.Root != run.Root || len(got.Successors) != len(run.Successors) {
			t.Errorf("loaded run differs: %+v", got)
		}
		for i, p := range got.Successors {
			next, err := board.ParsePlacement(p)
			if err != nil {
				t.Fatalf("successor %d: %v", i, err)
			}
			if next != f.Successors(board.Mover)[i] {
				t.Errorf("successor %d does not match generator", i)
			}
			if got.Hashes[i] != next.Hash() {
				t.Errorf("successor %d: hash %x, want %x", i, got.Hashes[i], next.Hash())
			}
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := s.LoadRun("no-such-run")
		if !errors.Is(err, ErrRunNotFound) {
			t.Errorf("expected ErrRunNotFound, got %v", err)
		}
	})
}

func TestListRuns(t *testing.T) {
	s := openTest(t)

	runs, err := s.ListRuns()
	if err != nil || len(runs) != 0 {
		t.Fatalf("expected no runs, got %d (%v)", len(runs), err)
	}

	if _, err := s.RecordRun(board.StartFrame(), board.Mover); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordRun(board.StartFrame(), board.Opponent); err != nil {
		t.Fatal(err)
	}

	runs, err = s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	for _, r := range runs {
		if len(r.Successors) != 16 {
			t.Fatalf("%s run has %d successors", r.Side, len(r.Successors))
		}
		want := "Pa2a3"
		if r.Side == "opponent" {
			want = "pa7a6"
		}
		if r.Moves[0] != want {
			t.Errorf("%s run starts with %q, want %q", r.Side, r.Moves[0], want)
		}
	}
}

func TestFrames(t *testing.T) {
	s := openTest(t)

	for _, f := range []board.Frame{board.StartFrame(), board.DemoFrame()} {
		hash, err := s.SaveFrame(f)
		if err != nil {
			t.Fatalf("SaveFrame failed: %v", err)
		}
		got, err := s.LoadFrame(hash)
		if err != nil {
			t.Fatalf("LoadFrame failed: %v", err)
		}
		if got != f {
			t.Errorf("frame changed in storage:\n%s", got)
		}
	}

	if _, err := s.LoadFrame(42); !errors.Is(err, ErrFrameNotFound) {
		t.Errorf("expected ErrFrameNotFound, got %v", err)
	}
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	run, err := s.RecordRun(board.DemoFrame(), board.Opponent)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	if _, err := s.LoadRun(run.ID); err != nil {
		t.Errorf("run lost after reopen: %v", err)
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	// Verify directory exists
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}
