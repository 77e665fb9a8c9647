package main

import (
	"testing"
	"time"

	"github.com/charmbracelet/ssh"
)

func TestWindowFollowsResize(t *testing.T) {
	win := newWindow(ssh.Window{Width: 80, Height: 24})
	changes := make(chan ssh.Window, 2)
	changes <- ssh.Window{Width: 100, Height: 30}
	changes <- ssh.Window{Width: 120, Height: 40}
	close(changes)
	win.follow(changes)

	w, h, err := win.size()
	if err != nil || w != 120 || h != 40 {
		t.Fatalf("size = %d, %d, %v", w, h, err)
	}
}

func TestWaitForSessions(t *testing.T) {
	var h gameHandler
	if !h.wait(time.Second) {
		t.Fatalf("wait with no sessions timed out")
	}

	h.sessions.Add(1)
	if h.wait(10 * time.Millisecond) {
		t.Fatalf("wait returned before the session ended")
	}
	h.sessions.Done()
	if !h.wait(time.Second) {
		t.Fatalf("wait timed out after the session ended")
	}
}
