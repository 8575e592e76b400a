// Command ninukictl drives the engine over the text protocol defined in
// internal/protocol, reading commands from stdin and writing responses to
// stdout.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/ninuki/internal/engine"
	"github.com/hailam/ninuki/internal/matchlog"
	"github.com/hailam/ninuki/internal/protocol"
)

var (
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	ttSizeBytes = flag.Int("hash", 64<<20, "transposition table size in bytes")
	maxDepth    = flag.Int("depth", 10, "alpha-beta max depth")
	timeBudget  = flag.Int("movetime", 5000, "time budget hint in milliseconds")
	noHistory   = flag.Bool("no-history", false, "disable persisted preferences and match history")
)

func main() {
	flag.Parse()

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

	if !*noHistory {
		store, err := matchlog.Open()
		if err != nil {
			log.Printf("warning: match history unavailable: %v", err)
		} else {
			defer store.Close()
			if prefs, err := store.LoadPreferences(); err == nil && *maxDepth == 10 {
				*maxDepth = prefs.Difficulty.Depth()
			}
		}
	}

	eng := engine.New(engine.Config{
		TTSizeBytes:  *ttSizeBytes,
		MaxDepth:     *maxDepth,
		TimeBudgetMs: *timeBudget,
	})

	driver := protocol.New(eng, os.Stdout)
	driver.Run(os.Stdin)
}
