package main

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/skyhop/level"
	"github.com/milk9111/skyhop/prefabs"
	"golang.design/x/clipboard"
)

// debugTools backs the -debug flag: F2 copies the running level's spec as
// YAML, F3 toggles collider outlines, and edits under prefabs/ reload the
// level on its next restart.
type debugTools struct {
	watcher *prefabs.Watcher

	clipboardOnce sync.Once
	clipboardErr  error
}

func newDebugTools(dir string) *debugTools {
	d := &debugTools{}
	w, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
	if err != nil {
		log.Printf("debug: hot reload disabled: %v", err)
		return d
	}
	d.watcher = w
	return d
}

func (d *debugTools) update(g *Game) {
	if g.level != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
			g.level.SetDebug(!g.level.Debug())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
			d.copySpec(g.level.Config())
		}
	}

	if d.watcher == nil {
		return
	}
	select {
	case err, ok := <-d.watcher.Errors:
		if ok {
			log.Printf("debug: watcher: %v", err)
		}
	default:
	}

	changed := d.watcher.Poll()
	if len(changed) == 0 || g.level == nil {
		return
	}
	cfg, err := level.Load(g.levelNum)
	if err != nil {
		log.Printf("debug: reload %s: %v", level.LevelName(g.levelNum), err)
		return
	}
	g.queueReload(cfg)
	log.Printf("debug: %s reloaded from %v, applies on next restart", cfg.Name, changed)
}

func (d *debugTools) copySpec(cfg level.Config) {
	d.clipboardOnce.Do(func() {
		d.clipboardErr = clipboard.Init()
	})
	if d.clipboardErr != nil {
		log.Printf("debug: clipboard unavailable: %v", d.clipboardErr)
		return
	}
	data, err := prefabs.MarshalLevelSpec(cfg.Spec)
	if err != nil {
		log.Printf("debug: marshal %s: %v", cfg.Name, err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("debug: copied %s spec to clipboard", cfg.Name)
}

func (d *debugTools) Close() error {
	if d.watcher == nil {
		return nil
	}
	return d.watcher.Close()
}
