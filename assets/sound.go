package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Sound names shared by the level and the audio system.
const (
	SoundJump = "jump"
	SoundHit  = "hit"
	SoundFlip = "flip"
)

// pcm renders a mono generator into 16-bit little-endian stereo.
func pcm(seconds float64, gen func(t float64) float64) []byte {
	n := int(seconds * SampleRate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := gen(float64(i) / SampleRate)
		v = math.Max(-1, math.Min(1, v))
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}

func envelope(t, length, attack float64) float64 {
	if t < attack {
		return t / attack
	}
	return math.Max(0, 1-(t-attack)/(length-attack))
}

// JumpPCM is a short rising chirp.
func JumpPCM() []byte {
	const length = 0.14
	phase := 0.0
	return pcm(length, func(t float64) float64 {
		freq := 420 + 900*t/length
		phase += 2 * math.Pi * freq / SampleRate
		return 0.5 * math.Sin(phase) * envelope(t, length, 0.005)
	})
}

// HitPCM is a noisy thud.
func HitPCM() []byte {
	const length = 0.35
	rng := rand.New(rand.NewPCG(3, 5))
	return pcm(length, func(t float64) float64 {
		noise := rng.Float64()*2 - 1
		thud := math.Sin(2 * math.Pi * 90 * t)
		return (0.45*noise + 0.55*thud) * envelope(t, length, 0.002)
	})
}

// FlipPCM is a falling two-tone sweep.
func FlipPCM() []byte {
	const length = 0.3
	return pcm(length, func(t float64) float64 {
		freq := 880.0
		if t > length/2 {
			freq = 587.33
		}
		return 0.35 * math.Sin(2*math.Pi*freq*t) * envelope(t, length, 0.01)
	})
}

// MusicPCM is a looping eight-step arpeggio.
func MusicPCM() []byte {
	const step = 0.25
	notes := []float64{261.63, 329.63, 392.00, 523.25, 440.00, 392.00, 329.63, 293.66}
	length := step * float64(len(notes))
	return pcm(length, func(t float64) float64 {
		i := int(t/step) % len(notes)
		local := t - float64(i)*step
		tone := math.Sin(2*math.Pi*notes[i]*t) + 0.3*math.Sin(2*math.Pi*notes[i]*2*t)
		bass := 0.4 * math.Sin(2*math.Pi*notes[0]/2*t)
		return 0.18 * (tone*envelope(local, step, 0.01) + bass)
	})
}

var ErrUnknownSound = errors.New("assets: unknown sound")

// SoundPCM returns the synthesized clip for a sound name.
func SoundPCM(name string) ([]byte, error) {
	switch name {
	case SoundJump:
		return JumpPCM(), nil
	case SoundHit:
		return HitPCM(), nil
	case SoundFlip:
		return FlipPCM(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}
}
