package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func sessionKey(m SessionModel, key string) SessionModel {
	next, _ := m.Update(keyMsg(key))
	return next.(SessionModel)
}

func TestSessionGameRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, config.Default(), core.DefaultConfig(), nil)

	m = sessionKey(m, "enter")
	if m.gameModel == nil {
		t.Fatal("selecting a mode should start a game")
	}
	if id := m.gameModel.game.ID(); id != t2048.IDClassic {
		t.Errorf("started %q, want %q", id, t2048.IDClassic)
	}

	// Pause, let a tick apply it, then go back.
	m = sessionKey(m, "p")
	next, _ := m.Update(TickMsg{})
	m = next.(SessionModel)
	m = sessionKey(m, "esc")

	if m.gameModel != nil {
		t.Fatal("back while paused should return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("the rebuilt menu should have no selection")
	}
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	m := NewSessionModel(nil, config.Default(), core.DefaultConfig(), nil)

	m = sessionKey(m, "tab")
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m = sessionKey(m, "esc")
	if m.scoreboard != nil {
		t.Fatal("esc should leave the scoreboard")
	}

	next, cmd := m.Update(keyMsg("q"))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("a finished session renders nothing")
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	dir := t.TempDir()

	want := filepath.Join(dir, "keys", "host_key")
	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("resolveHostKeyPath() = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory was not created: %v", err)
	}
}
