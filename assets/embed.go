package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate every synthesized clip is rendered at.
const SampleRate = 44100

// ArtDir holds optional PNG overrides for the painted sprites. A file named
// after a sprite key (e.g. "plane_0.png") replaces the generated frame.
var ArtDir = filepath.Join("assets", "art")

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func audioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(SampleRate)
	})
	return audioCtx
}

// LoadImage loads an override image from ArtDir by name.
func LoadImage(path string) (*image.NRGBA, error) {
	b, err := os.ReadFile(filepath.Join(ArtDir, filepath.FromSlash(cleanAssetPath(path))))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n, nil
	}
	out := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(out, out.Rect, img, img.Bounds().Min, draw.Src)
	return out, nil
}

// NewSoundPlayer wraps 16-bit stereo PCM in a one-shot player.
func NewSoundPlayer(pcm []byte) *audio.Player {
	return audioContext().NewPlayerFromBytes(pcm)
}

// NewLoopPlayer wraps 16-bit stereo PCM in a player that repeats forever.
func NewLoopPlayer(pcm []byte) (*audio.Player, error) {
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := audioContext().NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: loop player: %w", err)
	}
	return p, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/art/") {
		return strings.TrimPrefix(s, "assets/art/")
	}
	if !strings.HasSuffix(strings.ToLower(s), ".png") {
		s += ".png"
	}
	return s
}
