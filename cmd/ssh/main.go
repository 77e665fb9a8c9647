package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/laundry/internal/config"
	"github.com/tomz197/laundry/internal/draw"
	"github.com/tomz197/laundry/internal/loop/client"
	loopconfig "github.com/tomz197/laundry/internal/loop/config"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultIdleTimeout = 10 * time.Minute
	shutdownTimeout    = 15 * time.Second
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ssh"})

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}
	if level, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	idleTimeout, err := config.GetEnvDuration("SSH_IDLE_TIMEOUT", defaultIdleTimeout)
	if err != nil {
		logger.Fatal("invalid idle timeout", "err", err)
	}
	settings, err := loopconfig.FromEnv()
	if err != nil {
		logger.Fatal("invalid game configuration", "err", err)
	}
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "idleTimeout", idleTimeout)

	rootCtx, cancelSessions := context.WithCancel(context.Background())
	defer cancelSessions()

	h := &gameHandler{
		ctx:         rootCtx,
		settings:    settings,
		idleTimeout: idleTimeout,
		logger:      logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// End every running game so sessions can close on their own.
	cancelSessions()
	if !h.wait(shutdownTimeout) {
		logger.Warn("sessions still open after timeout", "timeout", shutdownTimeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one independent client per SSH session.
type gameHandler struct {
	ctx         context.Context
	settings    loopconfig.Settings
	idleTimeout time.Duration
	logger      *log.Logger
	sessions    sync.WaitGroup
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.sessions.Add(1)
		defer h.sessions.Done()

		logger := h.logger.With("user", sess.User())
		logger.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		win := newWindow(pty.Window)
		go win.follow(winCh)

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.ctx, cancel)
		defer stop()

		c := client.NewClient(bufio.NewReader(sess), sess, client.ClientOptions{
			TermSizeFunc: win.size,
			Settings:     h.settings,
			Logger:       logger,
			IdleTimeout:  h.idleTimeout,
		})
		if err := c.Run(ctx); err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// wait blocks until all sessions end or the timeout passes. Reports
// whether every session ended.
func (h *gameHandler) wait(timeout time.Duration) bool {
	ended := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(ended)
	}()
	select {
	case <-ended:
		return true
	case <-time.After(timeout):
		return false
	}
}

// window follows the client's terminal size as the PTY reports changes.
type window struct {
	mu   sync.Mutex
	cols int
	rows int
}

func newWindow(w ssh.Window) *window {
	return &window{cols: w.Width, rows: w.Height}
}

// follow applies resize events until the channel closes.
func (w *window) follow(changes <-chan ssh.Window) {
	for c := range changes {
		w.mu.Lock()
		w.cols, w.rows = c.Width, c.Height
		w.mu.Unlock()
	}
}

// size implements draw.TermSizeFunc.
func (w *window) size() (int, int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cols, w.rows, nil
}

var _ draw.TermSizeFunc = (*window)(nil).size
