// Package client hosts game sessions on a terminal reader/writer pair.
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/laundry/internal/clock"
	"github.com/tomz197/laundry/internal/draw"
	"github.com/tomz197/laundry/internal/input"
	"github.com/tomz197/laundry/internal/loop"
	"github.com/tomz197/laundry/internal/loop/config"
	"github.com/tomz197/laundry/internal/object"
)

// Client handles rendering and input for a single connection. Each client
// owns its own sessions; nothing is shared between clients.
type Client struct {
	settings    config.Settings
	screen      *Screen
	writer      io.Writer
	inputStream *input.Stream
	scheduler   clock.Scheduler
	logger      *log.Logger
	idleTimeout time.Duration

	state     GameState
	ctrl      *loop.Controller
	lastInput time.Time
	games     int
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Settings     config.Settings
	Logger       *log.Logger
	Scheduler    clock.Scheduler // nil means real time
	IdleTimeout  time.Duration   // Disconnect after this long without input; 0 disables
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.Reader, w io.Writer, opts ClientOptions) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = clock.Real{}
	}
	field := object.Field{Width: opts.Settings.FieldWidth, Height: opts.Settings.FieldHeight}

	return &Client{
		settings:    opts.Settings,
		screen:      NewScreen(w, field, opts.TermSizeFunc),
		writer:      w,
		inputStream: input.StartStream(r),
		scheduler:   sched,
		logger:      logger,
		idleTimeout: opts.IdleTimeout,
		state:       GameStateStart,
		lastInput:   time.Now(),
	}
}

// Run blocks until the player quits, the input closes or ctx is cancelled.
// It returns an error only when the terminal could not be written.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer c.stopSession()

	if err := c.drawStartScreen(); err != nil {
		return fmt.Errorf("draw start screen: %w", err)
	}

	var idle <-chan time.Time
	if c.idleTimeout > 0 {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		idle = ticker.C
	}

	events := c.inputStream.Events()
	for {
		// A nil channel blocks forever, so a finished session is only seen once.
		var sessionDone <-chan struct{}
		if c.state == GameStatePlaying && c.ctrl != nil {
			sessionDone = c.ctrl.Done()
		}

		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.lastInput = time.Now()
			quit, err := c.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				draw.ClearScreen(c.writer)
				return nil
			}

		case <-sessionDone:
			if err := c.sessionEnded(); err != nil {
				return err
			}

		case <-idle:
			if time.Since(c.lastInput) > c.idleTimeout {
				c.logger.Info("disconnecting idle client", "idle", time.Since(c.lastInput).Round(time.Second))
				return nil
			}
		}
	}
}

// handleEvent applies one input event. Returns true when the client should quit.
func (c *Client) handleEvent(ev input.Event) (bool, error) {
	switch ev {
	case input.EventQuit:
		return true, nil

	case input.EventStart:
		switch c.state {
		case GameStateStart, GameStateDead:
			c.startSession()
		case GameStatePlaying:
			c.ctrl.Start() // Resumes early when paused
		}

	case input.EventPause:
		if c.state != GameStatePlaying || c.ctrl.Phase() != loop.PhaseRunning {
			return false, nil
		}
		c.ctrl.Pause()
		err := c.screen.ShowBanner(
			"PAUSED",
			"",
			fmt.Sprintf("Resuming in %s", c.settings.PauseCooldown.Round(time.Second)),
			"SPACE to resume now",
		)
		if err != nil {
			return false, fmt.Errorf("draw pause banner: %w", err)
		}

	case input.EventMoveLeft:
		if c.state == GameStatePlaying {
			c.ctrl.MoveLeft()
		}

	case input.EventMoveRight:
		if c.state == GameStatePlaying {
			c.ctrl.MoveRight()
		}
	}
	return false, nil
}

// startSession replaces any finished session with a fresh one.
func (c *Client) startSession() {
	c.stopSession()
	c.games++
	c.ctrl = loop.NewController(c.settings, loop.Options{
		Scheduler: c.scheduler,
		Surface:   c.screen,
		Logger:    c.logger.With("game", c.games),
	})
	c.state = GameStatePlaying
	c.ctrl.Start()
	c.logger.Debug("session started", "game", c.games)
}

// stopSession terminates the current session, if any.
func (c *Client) stopSession() {
	if c.ctrl != nil {
		c.ctrl.Stop()
	}
}

// sessionEnded shows the game over screen, or reports why rendering failed.
func (c *Client) sessionEnded() error {
	c.state = GameStateDead
	if err := c.ctrl.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	snap := c.ctrl.Snapshot()
	err := c.screen.ShowBanner(
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		"",
		"SPACE to play again, Q to quit",
	)
	if err != nil {
		return fmt.Errorf("draw game over screen: %w", err)
	}
	return nil
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen() error {
	return c.screen.ShowBanner(
		"L A U N D R Y   D A Y",
		"",
		"Keep the laundry dry. Every drop that",
		"reaches the ground scores a point.",
		"",
		"A D / < >  . . .  Move",
		"P  . . . . . . . Pause",
		"Q  . . . . . . .  Quit",
		"",
		">>  Press SPACE to Start  <<",
	)
}
