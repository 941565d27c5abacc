package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/younwookim/apricot/internal/application/loop"
	"github.com/younwookim/apricot/internal/application/replay"
	"github.com/younwookim/apricot/internal/infrastructure/backend/ebitenbackend"
	"github.com/younwookim/apricot/internal/infrastructure/config"
	"github.com/younwookim/apricot/internal/platform"
)

//go:embed configs
var configFS embed.FS

func main() {
	recordFlag := flag.String("record", "", "Record events to file (e.g., -record session.json)")
	replayFlag := flag.String("replay", "", "Replay events from a recorded session file")
	flag.Parse()

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys).LoadApp()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	step := time.Duration(cfg.Loop.StepMillis) * time.Millisecond

	// The live event queue is filled by the ebiten driver. For replay the
	// driver stops synthesizing and the loop reads the session instead.
	liveSrc := ebitenbackend.NewSource()
	var src platform.EventSource = liveSrc
	var recorder *replay.Recorder

	switch {
	case *replayFlag != "":
		session, err := replay.LoadSession(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load session: %v", err)
		}
		src = replay.NewSource(*session)
		liveSrc = nil
		log.Printf("Replaying %s (%d ticks)", *replayFlag, len(session.Ticks))
	case *recordFlag != "":
		recorder = replay.NewRecorder(liveSrc, step)
		src = recorder
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	l := loop.New(src, loop.Options{
		Step:       step,
		MaxCatchUp: cfg.Loop.MaxCatchUp,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
	})
	l.Stack().Push(newTitleScene())

	if err := ebitenbackend.Run(l, liveSrc, cfg.Window, nil); err != nil {
		log.Fatal(err)
	}

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d ticks)", *recordFlag, recorder.TickCount())
		}
	}
}
