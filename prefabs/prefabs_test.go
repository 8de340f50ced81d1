package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if spec.Window.Width != 480 || spec.Window.Height != 800 || spec.Framerate != 120 {
		t.Fatalf("game spec = %+v", spec)
	}
	if spec.Audio.MusicVolume != 1 || spec.Audio.SFXVolume != 1 {
		t.Fatalf("audio defaults = %+v", spec.Audio)
	}
}

func TestLoadLevelSpecs(t *testing.T) {
	tests := []struct {
		level       int
		avatar      string
		gravity     float64
		flyers      bool
		zone        bool
		effects     bool
		floorFatal  bool
		solidGround bool
		script      string
	}{
		{level: 1, avatar: "pony", gravity: 600, solidGround: true},
		{level: 2, avatar: "plane", gravity: 555, flyers: true, floorFatal: true, script: "level2_obstacles.tengo"},
		{level: 3, avatar: "plane", gravity: 555, zone: true, effects: true, solidGround: true},
	}
	for _, tt := range tests {
		t.Run(LevelFile(tt.level), func(t *testing.T) {
			spec, err := LoadLevelSpec(tt.level)
			if err != nil {
				t.Fatalf("LoadLevelSpec: %v", err)
			}
			if spec.Art.Avatar != tt.avatar || spec.Player.Gravity != tt.gravity {
				t.Fatalf("art=%+v player=%+v", spec.Art, spec.Player)
			}
			if spec.Player.JumpImpulse != -400 || spec.Obstacles.Interval != 1.4 {
				t.Fatalf("jump=%v interval=%v", spec.Player.JumpImpulse, spec.Obstacles.Interval)
			}
			if (spec.Flyers != nil) != tt.flyers || (spec.Gravity != nil) != tt.zone || (spec.Effects != nil) != tt.effects {
				t.Fatalf("capabilities flyers=%v zone=%v effects=%v", spec.Flyers != nil, spec.Gravity != nil, spec.Effects != nil)
			}
			if !spec.Bounds.CeilingFatal || spec.Bounds.FloorFatal != tt.floorFatal || spec.Bounds.SolidGround != tt.solidGround {
				t.Fatalf("bounds = %+v", spec.Bounds)
			}
			if spec.Obstacles.Script != tt.script {
				t.Fatalf("script = %q", spec.Obstacles.Script)
			}
		})
	}
}

func TestLevel3Effects(t *testing.T) {
	spec, err := LoadLevelSpec(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := spec.Effects.Flash.Color.NRGBA(); got != (color.NRGBA{R: 255, A: 150}) {
		t.Fatalf("flash color = %+v", got)
	}
	if spec.Gravity.Min != 2000 || spec.Gravity.Max != 3500 || spec.Gravity.Warning != 800 {
		t.Fatalf("gravity zone = %+v", spec.Gravity)
	}
}

func TestMarshalLevelSpecRoundTrip(t *testing.T) {
	spec, err := LoadLevelSpec(3)
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalLevelSpec(spec)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"#ff000096"`) && !strings.Contains(string(data), "'#ff000096'") {
		t.Fatalf("flash color not rendered as hex:\n%s", data)
	}
	var back LevelSpec
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Gravity.TravelSpeed != 400 || back.Effects.Shake.Magnitude != 10 {
		t.Fatalf("round trip lost values: %+v", back)
	}
}

func TestYAMLColorErrors(t *testing.T) {
	tests := []string{"ff00", "zz0000", "[1, 2]"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			var c YAMLColor
			if err := yaml.Unmarshal([]byte(in), &c); err == nil {
				t.Fatalf("expected error for %q", in)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	tests := []string{
		"level2_obstacles",
		"level2_obstacles.tengo",
		"scripts/level2_obstacles.tengo",
		"prefabs/scripts/level2_obstacles.tengo",
	}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			src, err := LoadScript(name)
			if err != nil {
				t.Fatalf("LoadScript: %v", err)
			}
			if !strings.Contains(string(src), "choose") {
				t.Fatalf("unexpected script:\n%s", src)
			}
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(dir, GameFile), []byte("framerate: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Framerate != 60 || spec.Window.Width != 0 {
		t.Fatalf("disk copy not used: %+v", spec)
	}

	if _, err := LoadLevelSpec(9); err == nil {
		t.Fatal("expected error for missing level")
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "level1.yaml")
	if err := os.WriteFile(target, []byte("name: edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "level1.yaml" {
			t.Fatalf("event for %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for edited spec")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
