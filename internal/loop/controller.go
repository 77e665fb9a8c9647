// Package loop provides the game loop controller and per-tick game logic.
package loop

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/laundry/internal/clock"
	"github.com/tomz197/laundry/internal/loop/config"
	"github.com/tomz197/laundry/internal/object"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	PhaseIdle       Phase = iota // Not started yet
	PhaseRunning                 // Ticking
	PhasePaused                  // Ticking suspended until auto-resume
	PhaseTerminated              // Game over or stopped; final
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Options configures a Controller. Zero values select real time, a
// time-seeded random source, no rendering and a discarding logger.
type Options struct {
	Scheduler clock.Scheduler
	Rand      object.RandSource
	Surface   Surface
	Logger    *log.Logger
}

// Controller drives one game session. All exported methods are safe for
// concurrent use; ticks, input and transitions are serialized by mu.
type Controller struct {
	mu sync.Mutex

	settings config.Settings
	field    object.Field
	sched    clock.Scheduler
	spawner  *Spawner
	surface  Surface
	logger   *log.Logger

	state   *GameState
	laundry *object.Laundry
	phase   Phase

	// Every arm bumps the generation; callbacks carrying an older
	// generation were cancelled and do nothing when they fire.
	tickTimer   clock.Timer
	tickGen     uint64
	resumeTimer clock.Timer
	resumeGen   uint64

	done chan struct{}
	err  error
}

// NewController creates an Idle session.
func NewController(settings config.Settings, opts Options) *Controller {
	sched := opts.Scheduler
	if sched == nil {
		sched = clock.Real{}
	}
	rng := opts.Rand
	if rng == nil {
		seed := settings.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	surface := opts.Surface
	if surface == nil {
		surface = nopSurface{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := object.Field{Width: settings.FieldWidth, Height: settings.FieldHeight}
	return &Controller{
		settings: settings,
		field:    field,
		sched:    sched,
		spawner:  NewSpawner(rng, settings.SpawnProbability, settings.FallSpeed, settings.DropRadius),
		surface:  surface,
		logger:   logger,
		state:    NewGameState(settings.InitialLives),
		laundry: object.NewLaundry(field, settings.LaundryWidth, settings.LaundryHeight,
			settings.LaundryBottomOffset, settings.LaundrySpeed),
		phase: PhaseIdle,
		done:  make(chan struct{}),
	}
}

// Start begins ticking. Calling it while Running does nothing; while Paused
// it resumes right away and drops the pending auto-resume. A Terminated
// session cannot be restarted; create a new Controller instead.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseIdle:
		c.setPhase(PhaseRunning)
		c.armTick()
	case PhasePaused:
		c.cancelResume()
		c.resume()
	}
}

// Pause suspends ticking for the pause cooldown, then resumes automatically.
// Only has an effect while Running.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseRunning {
		return
	}
	c.cancelTick()
	c.setPhase(PhasePaused)

	c.resumeGen++
	gen := c.resumeGen
	c.resumeTimer = c.sched.AfterFunc(c.settings.PauseCooldown, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.resumeGen || c.phase != PhasePaused {
			return
		}
		c.resumeTimer = nil
		c.resume()
	})
}

// Stop ends the session from any phase, cancelling the tick and any
// pending auto-resume.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.terminate()
}

// MoveLeft moves the laundry one step left. Ignored once Terminated.
func (c *Controller) MoveLeft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseTerminated {
		return
	}
	c.laundry.MoveLeft(c.field)
}

// MoveRight moves the laundry one step right. Ignored once Terminated.
func (c *Controller) MoveRight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseTerminated {
		return
	}
	c.laundry.MoveRight(c.field)
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Done is closed when the session terminates.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Err returns the surface error that terminated the session, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Snapshot is a copy of the session state, safe to read without locking.
type Snapshot struct {
	Phase     Phase
	Score     int
	Lives     int
	Tick      uint64
	GameOver  bool
	Laundry   object.Laundry
	Raindrops []object.Raindrop // Oldest first
}

// Snapshot copies the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	drops := make([]object.Raindrop, len(c.state.Raindrops))
	for i, r := range c.state.Raindrops {
		drops[i] = *r
	}
	return Snapshot{
		Phase:     c.phase,
		Score:     c.state.Score,
		Lives:     c.state.Lives,
		Tick:      c.state.Tick,
		GameOver:  c.state.GameOver(),
		Laundry:   *c.laundry,
		Raindrops: drops,
	}
}

// armTick schedules the next tick. Must be called with mu held.
func (c *Controller) armTick() {
	c.tickGen++
	gen := c.tickGen
	c.tickTimer = c.sched.AfterFunc(c.settings.TickPeriod, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.tickGen || c.phase != PhaseRunning {
			return
		}
		c.tick()
		if c.phase == PhaseRunning {
			c.armTick()
		}
	})
}

// tick runs one update/render cycle: spawn, advance, resolve, render.
func (c *Controller) tick() {
	c.state.Tick++

	if r, ok := c.spawner.MaybeSpawn(c.field.Width); ok {
		c.state.AddRaindrop(r)
	}
	c.state.AdvanceAll()

	out := Resolve(c.state, c.laundry, c.field)

	if err := c.render(); err != nil {
		c.logger.Error("render failed", "err", err)
		c.err = err
		c.terminate()
		return
	}

	if out.Terminal {
		c.logger.Info("game over", "score", c.state.Score, "ticks", c.state.Tick)
		c.terminate()
	}
}

// render draws the frame in background, laundry, raindrops, HUD order.
func (c *Controller) render() error {
	c.surface.Clear()
	c.surface.DrawBackground(c.field)
	c.surface.DrawLaundry(c.laundry)
	for _, r := range c.state.Raindrops {
		c.surface.DrawRaindrop(r)
	}
	c.surface.DrawHUD(c.state.Score, c.state.Lives)
	return c.surface.Flush()
}

// resume returns to Running and re-arms the tick. Must be called with mu held.
func (c *Controller) resume() {
	c.setPhase(PhaseRunning)
	c.armTick()
}

// terminate moves to the final phase. Must be called with mu held.
func (c *Controller) terminate() {
	if c.phase == PhaseTerminated {
		return
	}
	c.cancelTick()
	c.cancelResume()
	c.setPhase(PhaseTerminated)
	close(c.done)
}

func (c *Controller) cancelTick() {
	c.tickGen++
	if c.tickTimer != nil {
		c.tickTimer.Stop()
		c.tickTimer = nil
	}
}

func (c *Controller) cancelResume() {
	c.resumeGen++
	if c.resumeTimer != nil {
		c.resumeTimer.Stop()
		c.resumeTimer = nil
	}
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	c.logger.Debug("phase change", "from", c.phase, "to", p)
	c.phase = p
	c.state.Paused = p == PhasePaused
}
