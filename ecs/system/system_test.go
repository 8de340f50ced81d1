package system

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/skyhop/assets"
	"github.com/milk9111/skyhop/common"
	"github.com/milk9111/skyhop/ecs"
	"github.com/milk9111/skyhop/ecs/component"
	"github.com/milk9111/skyhop/ecs/entity"
	"github.com/milk9111/skyhop/settings"
	"github.com/milk9111/skyhop/spawn"
)

const eps = 1e-9

type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (f *fakeRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0
	}
	v := f.floats[f.fi%len(f.floats)]
	f.fi++
	return v
}

func (f *fakeRand) IntN(n int) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[f.ii%len(f.ints)]
	f.ii++
	return min(v, n-1)
}

func solidFrame(name string, w, h int) *assets.Frame {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	return assets.NewFrame(name, img)
}

type harness struct {
	w          *ecs.World
	controller ecs.Entity
}

func newHarness(t *testing.T, p entity.ControllerParams) *harness {
	t.Helper()
	w := ecs.NewWorld()
	if p.Bounds.Width == 0 {
		p.Bounds = component.LevelBounds{Width: 480, Height: 800, CeilingFatal: true}
	}
	e, err := entity.NewLevelController(w, p)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	return &harness{w: w, controller: e}
}

func (h *harness) setDT(dt float64) {
	clock, _ := ecs.Get(h.w, h.controller, component.ClockComponent.Kind())
	clock.DT = dt
	clock.Elapsed += dt
}

func (h *harness) press(on bool) {
	input, _ := ecs.Get(h.w, h.controller, component.InputComponent.Kind())
	input.Pressed = on
}

func (h *harness) state() *component.LevelState {
	s, _ := ecs.Get(h.w, h.controller, component.LevelStateComponent.Kind())
	return s
}

func (h *harness) spawnPlayer(t *testing.T, gravity, impulse float64) ecs.Entity {
	t.Helper()
	frames := []*assets.Frame{solidFrame("p", 20, 10)}
	e, err := entity.NewPlayer(h.w, frames, entity.PlayerParams{
		JumpImpulse: impulse,
		Gravity:     gravity,
		TiltFactor:  0.06,
		AnimFPS:     10,
		SpawnX:      24,
		SpawnY:      400,
	})
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	return e
}

func TestJumpOverridesVelocity(t *testing.T) {
	tests := []struct {
		name    string
		gravity float64
		prior   float64
		want    float64
	}{
		{name: "falling_fast", gravity: 600, prior: 900, want: -400},
		{name: "already_rising", gravity: 600, prior: -1000, want: -400},
		{name: "at_rest", gravity: 600, prior: 0, want: -400},
		{name: "flipped_gravity", gravity: -600, prior: -250, want: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := &component.Body{Velocity: tt.prior, Gravity: tt.gravity}
			Jump(body, -400)
			if body.Velocity != tt.want {
				t.Fatalf("velocity = %v, want %v", body.Velocity, tt.want)
			}
		})
	}
}

func TestApplyGravitySteps(t *testing.T) {
	tests := []struct {
		name    string
		v0      float64
		gravity float64
		dt      float64
		n       int
	}{
		{name: "from_rest", v0: 0, gravity: 600, dt: 1.0 / 120, n: 240},
		{name: "after_jump", v0: -400, gravity: 555, dt: 1.0 / 60, n: 37},
		{name: "flipped", v0: 120, gravity: -600, dt: 0.01, n: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := &component.Body{Velocity: tt.v0, Gravity: tt.gravity}
			tr := &component.Transform{}
			for i := 0; i < tt.n; i++ {
				ApplyGravity(body, tr, tt.dt)
			}
			want := tt.v0 + tt.gravity*tt.dt*float64(tt.n)
			if math.Abs(body.Velocity-want) > 1e-6 {
				t.Fatalf("velocity = %v, want %v", body.Velocity, want)
			}
		})
	}
}

func TestFlipGravityKeepsVelocity(t *testing.T) {
	body := &component.Body{Velocity: 123, Gravity: 600}
	FlipGravity(body, 600, true)
	if body.Gravity != -600 || body.Velocity != 123 {
		t.Fatalf("after flip: %+v", body)
	}
	FlipGravity(body, 600, false)
	if body.Gravity != 600 || body.Velocity != 123 {
		t.Fatalf("after unflip: %+v", body)
	}
}

// A jump on the first of ten 1/60 s frames under gravity 600 follows the
// semi-implicit Euler trace exactly.
func TestJumpTrace(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	player := h.spawnPlayer(t, 600, -400)
	tr, _ := ecs.Get(h.w, player, component.TransformComponent.Kind())
	body, _ := ecs.Get(h.w, player, component.BodyComponent.Kind())
	y0 := tr.Y

	step := common.NewFixedStep(60)
	sched := ecs.NewScheduler(NewClockSystem(step), NewPlayerControlSystem(), NewPhysicsSystem())

	prevV := math.Inf(-1)
	for n := 1; n <= 10; n++ {
		h.press(n == 1)
		sched.Update(h.w)

		wantV := -400 + 600*step.Step*float64(n)
		sumV := -400*float64(n) + 600*step.Step*float64(n*(n+1))/2
		wantY := y0 + sumV*step.Step
		if math.Abs(body.Velocity-wantV) > eps {
			t.Fatalf("frame %d: velocity = %v, want %v", n, body.Velocity, wantV)
		}
		if math.Abs(tr.Y-wantY) > eps {
			t.Fatalf("frame %d: y = %v, want %v", n, tr.Y, wantY)
		}
		if body.Velocity <= prevV {
			t.Fatalf("frame %d: velocity not increasing", n)
		}
		prevV = body.Velocity
	}
	if math.Abs(body.Velocity-(-300)) > eps || math.Abs(tr.Y-(y0-57.5)) > eps {
		t.Fatalf("final v=%v y=%v", body.Velocity, tr.Y-y0)
	}
}

func TestPlayerControlIgnoredWhileOver(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	player := h.spawnPlayer(t, 600, -400)
	h.state().Active = false
	h.press(true)
	NewPlayerControlSystem().Update(h.w)
	body, _ := ecs.Get(h.w, player, component.BodyComponent.Kind())
	if body.Velocity != 0 {
		t.Fatalf("jumped while over: %v", body.Velocity)
	}
}

func TestScrollStaysInRange(t *testing.T) {
	layer := &component.ScrollLayer{Speed: 360, Width: 480}
	dts := []float64{1.0 / 120, 1.0 / 60, 0.5, 1.3, 2.7, 0.001}
	for i := 0; i < 600; i++ {
		Scroll(layer, dts[i%len(dts)])
		if layer.Offset < -layer.Width || layer.Offset > 0 {
			t.Fatalf("step %d: offset %v out of [-480, 0]", i, layer.Offset)
		}
	}

	exact := &component.ScrollLayer{Speed: 240, Width: 480}
	Scroll(exact, 1.5)
	if exact.Offset != -360 {
		t.Fatalf("offset = %v, want -360", exact.Offset)
	}
	Scroll(exact, 1)
	if exact.Offset != -120 {
		t.Fatalf("wrapped offset = %v, want -120", exact.Offset)
	}
}

func TestAdvanceAnimation(t *testing.T) {
	frames := []*assets.Frame{solidFrame("a", 1, 1), solidFrame("b", 1, 1), solidFrame("c", 1, 1)}

	t.Run("cycle", func(t *testing.T) {
		anim := &component.Animation{Frames: frames, FPS: 10, Playing: true}
		for i := 0; i < 5; i++ {
			Advance(anim, 0.05)
		}
		if anim.Frame != 2 {
			t.Fatalf("frame = %d, want 2", anim.Frame)
		}
		Advance(anim, 0.1)
		if anim.Frame != 0 {
			t.Fatalf("frame = %d, want wrap to 0", anim.Frame)
		}
	})

	t.Run("step", func(t *testing.T) {
		anim := &component.Animation{Frames: frames[:2], FPS: 10, Mode: component.AnimationStep, Playing: true}
		Advance(anim, 0.0625)
		if anim.Frame != 0 {
			t.Fatalf("advanced early")
		}
		Advance(anim, 0.0625)
		if anim.Frame != 1 || anim.Phase != 0 {
			t.Fatalf("frame=%d phase=%v", anim.Frame, anim.Phase)
		}
	})

	t.Run("stopped", func(t *testing.T) {
		anim := &component.Animation{Frames: frames, FPS: 10}
		Advance(anim, 1)
		if anim.Frame != 0 {
			t.Fatalf("stopped animation advanced")
		}
	})
}

func TestPlayerTiltFollowsVelocity(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	player := h.spawnPlayer(t, 600, -400)
	body, _ := ecs.Get(h.w, player, component.BodyComponent.Kind())
	body.Velocity = 1500 // 90 degrees at 0.06

	h.setDT(0)
	NewAnimationSystem().Update(h.w)

	tr, _ := ecs.Get(h.w, player, component.TransformComponent.Kind())
	if math.Abs(tr.Rotation-math.Pi/2) > eps {
		t.Fatalf("rotation = %v, want pi/2", tr.Rotation)
	}
	c, _ := ecs.Get(h.w, player, component.ColliderComponent.Kind())
	if c.Mask.Width() != 10 || c.Mask.Height() != 20 {
		t.Fatalf("rotated collider = %dx%d, want 10x20", c.Mask.Width(), c.Mask.Height())
	}
	if c.OffsetX != 5 || c.OffsetY != -5 {
		t.Fatalf("offset = (%d, %d), want (5, -5)", c.OffsetX, c.OffsetY)
	}
}

func TestEdgesFollowTiltedCollider(t *testing.T) {
	// A 20x10 avatar tilted 90 degrees has a 10x20 collider 5 px above its
	// transform.
	tests := []struct {
		name      string
		y         float64
		wantHit   bool
		wantCause ecs.DeathCause
	}{
		{name: "ceiling_by_tilt", y: 4, wantHit: true, wantCause: ecs.DeathCeiling},
		{name: "clear_of_ceiling", y: 6},
		{name: "floor_by_tilt", y: 786, wantHit: true, wantCause: ecs.DeathFloor},
		{name: "clear_of_floor", y: 784},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, entity.ControllerParams{
				Bounds: component.LevelBounds{Width: 480, Height: 800, CeilingFatal: true, FloorFatal: true},
			})
			player := h.spawnPlayer(t, 600, -400)
			body, _ := ecs.Get(h.w, player, component.BodyComponent.Kind())
			body.Velocity = 1500
			h.setDT(0)
			NewAnimationSystem().Update(h.w)

			tr, _ := ecs.Get(h.w, player, component.TransformComponent.Kind())
			tr.Y = tt.y
			death, hit := Check(h.w, player)
			if hit != tt.wantHit || death.Cause != tt.wantCause {
				t.Fatalf("Check = (%v, %v), want (%v, %v)", death.Cause, hit, tt.wantCause, tt.wantHit)
			}
		})
	}
}

func TestObstacleCull(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	frame := solidFrame("o", 80, 100)
	kept, _ := entity.NewObstacle(h.w, frame, -179, 0, 400, 100)
	culled, _ := entity.NewObstacle(h.w, frame, -180, 0, 400, 100)

	h.setDT(0)
	NewObstacleSystem().Update(h.w)

	if !ecs.IsAlive(h.w, kept) {
		t.Fatal("obstacle with right edge at -99 was culled")
	}
	if ecs.IsAlive(h.w, culled) {
		t.Fatal("obstacle with right edge at -100 survived")
	}
}

func TestMovingObstacleOscillates(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	e, _ := entity.NewMovingObstacle(h.w, solidFrame("o", 10, 10), 400, -80, 400, 100, 70, 3)

	h.setDT(0.5)
	NewObstacleSystem().Update(h.w)

	tr, _ := ecs.Get(h.w, e, component.TransformComponent.Kind())
	if tr.X != 200 {
		t.Fatalf("x = %v, want 200", tr.X)
	}
	if want := -80 + 70*math.Sin(1.5); math.Abs(tr.Y-want) > eps {
		t.Fatalf("y = %v, want %v", tr.Y, want)
	}
}

func TestFlyerTrailAndCull(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	frames := []*assets.Frame{solidFrame("c", 20, 10)}
	e, _ := entity.NewFlyer(h.w, frames, 480, 300, entity.FlyerParams{Speed: 100, FPS: 10, TrailLength: 10, TrailAlpha: 180})

	sys := NewFlyerSystem()
	h.setDT(0.25)
	for i := 0; i < 12; i++ {
		sys.Update(h.w)
	}
	trail, _ := ecs.Get(h.w, e, component.TrailComponent.Kind())
	if len(trail.Points) != 10 {
		t.Fatalf("trail length = %d, want 10", len(trail.Points))
	}
	if trail.Points[9][0] != 480-11*25 {
		t.Fatalf("newest trail x = %v", trail.Points[9][0])
	}
	if math.Abs(trail.Alpha(9)-180.0/255) > eps || math.Abs(trail.Alpha(0)-18.0/255) > eps {
		t.Fatalf("alphas = %v .. %v", trail.Alpha(0), trail.Alpha(9))
	}

	tr, _ := ecs.Get(h.w, e, component.TransformComponent.Kind())
	tr.X = -20 // right edge exactly at 0
	h.setDT(0)
	sys.Update(h.w)
	if !ecs.IsAlive(h.w, e) {
		t.Fatal("flyer with right edge at 0 was culled")
	}
	tr.X = -20.5
	sys.Update(h.w)
	if ecs.IsAlive(h.w, e) {
		t.Fatal("flyer past the left edge survived")
	}
}

func TestScoreCountsActiveSeconds(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	sys := NewScoreSystem()
	h.setDT(1.0 / 120)
	for i := 0; i < 250; i++ {
		sys.Update(h.w)
	}
	if h.state().Score != 2 {
		t.Fatalf("score = %d, want 2", h.state().Score)
	}
	h.state().Active = false
	for i := 0; i < 240; i++ {
		sys.Update(h.w)
	}
	if h.state().Score != 2 {
		t.Fatalf("score advanced while over: %d", h.state().Score)
	}
}

func deathEvents(w *ecs.World) []ecs.DeathEvent {
	var out []ecs.DeathEvent
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventDeath {
			out = append(out, evt.Data.(ecs.DeathEvent))
		}
	}
	return out
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name      string
		obstacleX float64
		playerY   float64
		bounds    component.LevelBounds
		wantHit   bool
		wantCause ecs.DeathCause
	}{
		{
			name:      "disjoint",
			obstacleX: 300,
			playerY:   400,
			bounds:    component.LevelBounds{Width: 480, Height: 800, CeilingFatal: true, FloorFatal: true},
		},
		{
			name:      "one_pixel_overlap",
			obstacleX: 24 + 19,
			playerY:   400,
			bounds:    component.LevelBounds{Width: 480, Height: 800, CeilingFatal: true},
			wantHit:   true,
			wantCause: ecs.DeathCollision,
		},
		{
			name:      "ceiling",
			obstacleX: 300,
			playerY:   0,
			bounds:    component.LevelBounds{Width: 480, Height: 800, CeilingFatal: true},
			wantHit:   true,
			wantCause: ecs.DeathCeiling,
		},
		{
			name:      "floor_fatal",
			obstacleX: 300,
			playerY:   790,
			bounds:    component.LevelBounds{Width: 480, Height: 800, FloorFatal: true},
			wantHit:   true,
			wantCause: ecs.DeathFloor,
		},
		{
			name:      "floor_not_fatal",
			obstacleX: 300,
			playerY:   790,
			bounds:    component.LevelBounds{Width: 480, Height: 800, CeilingFatal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, entity.ControllerParams{Bounds: tt.bounds})
			player := h.spawnPlayer(t, 600, -400)
			tr, _ := ecs.Get(h.w, player, component.TransformComponent.Kind())
			tr.Y = tt.playerY
			obstacle, _ := entity.NewObstacle(h.w, solidFrame("o", 40, 800), tt.obstacleX, 0, 400, 100)
			ground, _ := entity.NewGround(h.w, solidFrame("g", 480, 5), 360, 2000, true)

			sys := NewCollisionSystem()
			sys.Update(h.w)
			events := deathEvents(h.w)

			if !tt.wantHit {
				if len(events) != 0 || !ecs.IsAlive(h.w, player) {
					t.Fatalf("unexpected death: %v", events)
				}
				return
			}
			if len(events) != 1 || events[0].Cause != tt.wantCause {
				t.Fatalf("events = %v, want one %s", events, tt.wantCause)
			}
			if ecs.IsAlive(h.w, player) || ecs.IsAlive(h.w, obstacle) {
				t.Fatal("player and clearable hazards should be destroyed")
			}
			if !ecs.IsAlive(h.w, ground) {
				t.Fatal("permanent hazard was destroyed")
			}

			// Later frames find nothing to collide with.
			sys.Update(h.w)
			if again := deathEvents(h.w); len(again) != 0 {
				t.Fatalf("repeat events: %v", again)
			}
		})
	}
}

func TestCollisionSkippedWhileOver(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{})
	h.spawnPlayer(t, 600, -400)
	entity.NewObstacle(h.w, solidFrame("o", 480, 800), 0, 0, 400, 100)
	h.state().Active = false

	NewCollisionSystem().Update(h.w)
	if events := deathEvents(h.w); len(events) != 0 {
		t.Fatalf("collision ran while over: %v", events)
	}
}

func TestGravityZoneFlips(t *testing.T) {
	rng := &fakeRand{ints: []int{0}}
	h := newHarness(t, entity.ControllerParams{
		Zone: &component.GravityZone{
			Trigger:     spawn.NewDistanceTrigger(100, 200, 60, rng),
			TravelSpeed: 400,
			BlinkPeriod: 0.3,
			IconVisible: true,
		},
	})
	player := h.spawnPlayer(t, 600, -400)
	body, _ := ecs.Get(h.w, player, component.BodyComponent.Kind())
	body.Velocity = 77
	zone, _ := ecs.Get(h.w, h.controller, component.GravityZoneComponent.Kind())

	sys := NewGravityZoneSystem()
	h.setDT(0.125) // 50 px per frame
	sys.Update(h.w)
	if !zone.Trigger.InWarning() || zone.Flipped {
		t.Fatalf("expected warning before the first flip")
	}
	sys.Update(h.w)
	if !zone.Flipped || body.Gravity != -600 || body.Velocity != 77 {
		t.Fatalf("after flip: zone=%v body=%+v", zone.Flipped, body)
	}
	for i := 0; i < 2; i++ {
		sys.Update(h.w)
	}
	if zone.Flipped || body.Gravity != 600 {
		t.Fatalf("expected second flip back to normal gravity")
	}

	ResetGravityZone(zone, 0)
	if zone.Flipped || zone.Trigger.Traveled() != 0 {
		t.Fatalf("reset left %+v", zone)
	}
}

func TestGravityZoneIconBlinks(t *testing.T) {
	rng := &fakeRand{ints: []int{0}}
	h := newHarness(t, entity.ControllerParams{
		Zone: &component.GravityZone{
			Trigger:     spawn.NewDistanceTrigger(1000, 1000, 800, rng),
			TravelSpeed: 400,
			BlinkPeriod: 0.3,
			IconVisible: true,
		},
	})
	zone, _ := ecs.Get(h.w, h.controller, component.GravityZoneComponent.Kind())
	sys := NewGravityZoneSystem()

	h.setDT(0.5) // 200 px: warning starts at 200
	sys.Update(h.w)
	if !zone.Trigger.InWarning() || zone.IconVisible {
		t.Fatalf("icon should toggle once warned: warning=%v visible=%v", zone.Trigger.InWarning(), zone.IconVisible)
	}
	h.setDT(0.125)
	sys.Update(h.w)
	if zone.IconVisible {
		t.Fatal("icon toggled before a full blink period")
	}
	h.setDT(0.25)
	sys.Update(h.w)
	if !zone.IconVisible {
		t.Fatal("icon should toggle after the blink period")
	}
}

func TestSpawnSingleObstacle(t *testing.T) {
	lib, err := assets.NewLibrary(assets.LibraryOptions{Avatar: "plane", Width: 480, Height: 800, GroundHeight: 90})
	if err != nil {
		t.Fatal(err)
	}
	director, _ := spawn.NewDirector("none", nil)
	rng := &fakeRand{floats: []float64{0.7}, ints: []int{0}}
	h := newHarness(t, entity.ControllerParams{
		Spawner: &component.Spawner{
			Obstacles: spawn.NewTimer(0.5),
			Director:  director,
			Rand:      rng,
			Obstacle: component.ObstacleParams{
				Speed: 400, CullMargin: 100, Scale: 1,
				XJitterMin: 40, XJitterMax: 100,
				BottomMin: 10, BottomMax: 50,
				TopMin: -50, TopMax: -10,
			},
		},
	})

	sys := NewSpawnSystem(lib)
	h.setDT(0.125)
	for i := 0; i < 3; i++ {
		sys.Update(h.w)
	}
	if n := len(h.w.Query(component.ObstacleTagComponent.Kind())); n != 0 {
		t.Fatalf("spawned %d obstacles early", n)
	}
	sys.Update(h.w)

	obstacles := h.w.Query(component.ObstacleTagComponent.Kind())
	if len(obstacles) != 1 {
		t.Fatalf("obstacles = %d, want 1", len(obstacles))
	}
	tr, _ := ecs.Get(h.w, obstacles[0], component.TransformComponent.Kind())
	if tr.X != 480 || tr.Y != 370 {
		t.Fatalf("obstacle at (%v, %v), want (480, 370)", tr.X, tr.Y)
	}

	h.state().Active = false
	for i := 0; i < 8; i++ {
		sys.Update(h.w)
	}
	if n := len(h.w.Query(component.ObstacleTagComponent.Kind())); n != 1 {
		t.Fatalf("spawned while over: %d", n)
	}
}

func TestSpawnPairedFlyers(t *testing.T) {
	lib, err := assets.NewLibrary(assets.LibraryOptions{Avatar: "plane", Width: 480, Height: 800, GroundHeight: 90})
	if err != nil {
		t.Fatal(err)
	}
	// Pair roll hits, then y1=160+140, y2=480+20 from the far band, then
	// two speeds.
	rng := &fakeRand{floats: []float64{0.1}, ints: []int{140, 20, 0, 250}}
	h := newHarness(t, entity.ControllerParams{
		Spawner: &component.Spawner{
			Obstacles: spawn.NewTimer(100),
			Flyers:    spawn.NewTimer(3),
			Rand:      rng,
			Flyer: component.FlyerParams{
				SpeedMin: 600, SpeedMax: 850,
				YMin: 160, YMax: 533,
				PairChance: 0.2, MinDistance: 180,
				FPS: 10, TrailLength: 10, TrailAlpha: 180, Lethal: true,
			},
		},
	})

	h.setDT(3)
	NewSpawnSystem(lib).Update(h.w)

	flyers := h.w.Query(component.FlyerTagComponent.Kind())
	if len(flyers) != 2 {
		t.Fatalf("flyers = %d, want 2", len(flyers))
	}
	var centers, speeds []float64
	for _, e := range flyers {
		tr, _ := ecs.Get(h.w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(h.w, e, component.SpriteComponent.Kind())
		f, _ := ecs.Get(h.w, e, component.FlyerComponent.Kind())
		centers = append(centers, tr.Y+s.Height()/2)
		speeds = append(speeds, f.Speed)
		if !ecs.Has(h.w, e, component.HazardComponent.Kind()) {
			t.Fatal("lethal flyer without hazard")
		}
	}
	if math.Abs(centers[1]-centers[0]) < 180 {
		t.Fatalf("flyer centers %v closer than 180", centers)
	}
	if speeds[0] != 600 || speeds[1] != 850 {
		t.Fatalf("speeds = %v", speeds)
	}
}

type fakePlayer struct {
	playing bool
	plays   int
	rewinds int
	volume  float64
}

func (f *fakePlayer) IsPlaying() bool     { return f.playing }
func (f *fakePlayer) Rewind() error       { f.rewinds++; return nil }
func (f *fakePlayer) Play()               { f.playing = true; f.plays++ }
func (f *fakePlayer) Pause()              { f.playing = false }
func (f *fakePlayer) SetVolume(v float64) { f.volume = v }

func TestEffectsTiming(t *testing.T) {
	h := newHarness(t, entity.ControllerParams{
		Flash: &component.ScreenFlash{Duration: 0.2},
		Shake: &component.ScreenShake{Duration: 0.3, Magnitude: 10},
	})
	flash, _ := ecs.Get(h.w, h.controller, component.ScreenFlashComponent.Kind())
	shake, _ := ecs.Get(h.w, h.controller, component.ScreenShakeComponent.Kind())
	sys := NewEffectsSystem()

	StartEffects(h.w, 0)
	h.setDT(0.125)
	sys.Update(h.w)
	if !flash.Active || !shake.Active || shake.OffsetX == 0 {
		t.Fatalf("effects should be running: flash=%v shake=%+v", flash.Active, shake)
	}
	h.setDT(0.125)
	sys.Update(h.w)
	if flash.Active || !shake.Active {
		t.Fatalf("flash should expire first: flash=%v shake=%v", flash.Active, shake.Active)
	}
	h.setDT(0.125)
	sys.Update(h.w)
	if shake.Active || shake.OffsetX != 0 {
		t.Fatalf("shake should be over: %+v", shake)
	}

	if got := ShakeOffset(10, 0); got != 10 {
		t.Fatalf("ShakeOffset(10, 0) = %v", got)
	}
}

func TestAudioPlaysRequestedSounds(t *testing.T) {
	w := ecs.NewWorld()
	players := map[string]*fakePlayer{}
	factory := func(name string) (component.SoundPlayer, error) {
		p := &fakePlayer{}
		players[name] = p
		return p, nil
	}
	music := &fakePlayer{}
	if _, err := entity.NewAudio(w, []entity.SoundSpec{
		{Name: assets.SoundJump, Volume: 0.3},
		{Name: assets.SoundHit, Volume: 1},
	}, factory, music, 0.8); err != nil {
		t.Fatal(err)
	}

	s := settings.New(0.5, 0.5)
	RequestSound(w, assets.SoundJump)
	NewAudioSystem(s).Update(w)
	NewMusicSystem(s).Update(w)

	jump := players[assets.SoundJump]
	if jump.plays != 1 || jump.rewinds != 1 || math.Abs(jump.volume-0.15) > eps {
		t.Fatalf("jump player = %+v", jump)
	}
	if players[assets.SoundHit].plays != 0 {
		t.Fatal("unrequested sound played")
	}
	if !music.playing || math.Abs(music.volume-0.4) > eps {
		t.Fatalf("music = %+v", music)
	}

	// Requests are one-shot.
	NewAudioSystem(s).Update(w)
	if jump.plays != 1 {
		t.Fatalf("jump replayed: %d", jump.plays)
	}

	s.SetMusic(0)
	NewMusicSystem(s).Update(w)
	if music.volume != 0 {
		t.Fatalf("music volume = %v after mute", music.volume)
	}
	StopMusic(w)
	if music.playing {
		t.Fatal("music still playing after StopMusic")
	}
	NewMusicSystem(s).Update(w)
	if music.playing || music.plays != 1 {
		t.Fatalf("stopped music restarted: %+v", music)
	}
}
