package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/bitframe/internal/shell"
	"github.com/hailam/bitframe/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	dbPath     = flag.String("db", "", "record runs in the badger database at this directory (env BITFRAME_DB)")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	sh := shell.New(os.Stdin, os.Stdout)

	dir := *dbPath
	if dir == "" {
		dir = os.Getenv("BITFRAME_DB")
	}
	if dir != "" {
		st, err := storage.Open(dir)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		defer st.Close()
		sh.WithStorage(st)
	}

	if err := sh.Run(); err != nil {
		log.Printf("read commands: %v", err)
	}
}
