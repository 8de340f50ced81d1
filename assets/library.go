package assets

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var ErrUnknownAvatar = errors.New("assets: unknown avatar")

const (
	ObstacleVariants = 2

	obstacleWidth  = 80
	obstacleHeight = 440
	crowWidth      = 48
	crowHeight     = 32
	iconSize       = 80
)

var avatarSizes = map[string]image.Point{
	"plane": {X: 60, Y: 40},
	"pony":  {X: 64, Y: 52},
}

var skyPalettes = map[string]skyPalette{
	"pastel": pastelSky,
	"day":    daySky,
}

// LibraryOptions selects the art set for one level.
type LibraryOptions struct {
	Avatar           string
	AvatarScale      float64
	Background       string
	BackgroundFrames int
	CrowScale        float64
	Width            int
	Height           int
	GroundHeight     int
}

// Library holds every frame a level draws or collides with.
type Library struct {
	Avatar      []*Frame
	Crow        []*Frame
	Background  []*Frame
	Ground      *Frame
	GravityIcon [2]*Frame

	obstacles map[obstacleKey]*Frame
}

type obstacleKey struct {
	variant int
	scale   int // per mille
	flipped bool
}

func NewLibrary(opts LibraryOptions) (*Library, error) {
	size, ok := avatarSizes[opts.Avatar]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAvatar, opts.Avatar)
	}
	palette, ok := skyPalettes[opts.Background]
	if !ok {
		palette = daySky
	}
	if opts.AvatarScale <= 0 {
		opts.AvatarScale = 1
	}
	if opts.CrowScale <= 0 {
		opts.CrowScale = 1
	}
	if opts.BackgroundFrames <= 0 {
		opts.BackgroundFrames = 1
	}

	lib := &Library{obstacles: map[obstacleKey]*Frame{}}
	for i := 0; i < 3; i++ {
		lib.Avatar = append(lib.Avatar, frameOrPaint(fmt.Sprintf("%s_%d", opts.Avatar, i), opts.AvatarScale, func() *image.NRGBA {
			if opts.Avatar == "pony" {
				return paintPony(size.X, size.Y, i)
			}
			return paintPlane(size.X, size.Y, i)
		}))
	}
	for i := 0; i < 2; i++ {
		lib.Crow = append(lib.Crow, frameOrPaint(fmt.Sprintf("crow_%d", i), opts.CrowScale, func() *image.NRGBA {
			return paintCrow(crowWidth, crowHeight, i)
		}))
	}
	for i := 0; i < opts.BackgroundFrames; i++ {
		lib.Background = append(lib.Background, frameOrPaint(fmt.Sprintf("%s_bg_%d", opts.Background, i), 1, func() *image.NRGBA {
			return paintSky(opts.Width, opts.Height, palette, i, opts.BackgroundFrames)
		}))
	}
	lib.Ground = frameOrPaint("ground", 1, func() *image.NRGBA {
		return paintGround(opts.Width, opts.GroundHeight)
	})
	lib.GravityIcon[0] = NewFrame("gravity_down", paintGravityIcon(iconSize, false))
	lib.GravityIcon[1] = NewFrame("gravity_up", paintGravityIcon(iconSize, true))
	return lib, nil
}

// Obstacle returns the frame for a column variant at the given scale,
// optionally flipped to hang from the top edge.
func (l *Library) Obstacle(variant int, scale float64, flipped bool) *Frame {
	key := obstacleKey{variant: variant % ObstacleVariants, scale: int(math.Round(scale * 1000)), flipped: flipped}
	if f, ok := l.obstacles[key]; ok {
		return f
	}
	name := fmt.Sprintf("obstacle_%d", key.variant)
	f := frameOrPaint(name, scale, func() *image.NRGBA {
		return paintObstacle(obstacleWidth, obstacleHeight, key.variant)
	})
	if flipped {
		f = NewFrame(name+"_flipped", flipVertical(f.Source))
	}
	l.obstacles[key] = f
	return f
}

func frameOrPaint(name string, scale float64, paint func() *image.NRGBA) *Frame {
	src, err := LoadImage(name)
	if err != nil {
		src = paint()
	}
	return NewFrame(name, scaleImage(src, scale))
}
