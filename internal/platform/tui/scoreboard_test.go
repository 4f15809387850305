package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.RecordGame(storage.GameRecord{Mode: t2048.IDClassic, Score: 900, MaxTile: 128})
	store.RecordGame(storage.GameRecord{Mode: t2048.IDClassic, Score: 300, MaxTile: 32})
	store.RecordGame(storage.GameRecord{Mode: t2048.IDEndless, Score: 5000, MaxTile: 512})

	m := NewScoreboardModel(store, 100, 30)
	if m.currentMode() != t2048.IDClassic {
		t.Fatalf("first mode = %q, want %q", m.currentMode(), t2048.IDClassic)
	}
	if len(m.games) != 2 || m.games[0].Score != 900 {
		t.Fatalf("top view should list the best game first, got %+v", m.games)
	}
	if !strings.Contains(m.statsLine(), "Games: 2") {
		t.Errorf("statsLine() = %q", m.statsLine())
	}

	next, _ := m.Update(keyMsg("r"))
	m = next.(ScoreboardModel)
	if m.view != viewRecent || m.games[0].Score != 300 {
		t.Errorf("recent view should list the newest game first, got %+v", m.games)
	}

	next, _ = m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.currentMode() != t2048.IDEndless || len(m.games) != 1 {
		t.Errorf("tab should switch to the endless mode, got %q with %d games", m.currentMode(), len(m.games))
	}

	next, _ = m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.currentMode() != t2048.IDClassic {
		t.Errorf("tab should wrap around, got %q", m.currentMode())
	}

	if view := m.View(); !strings.Contains(view, "RECENT GAMES") || !strings.Contains(view, "300") {
		t.Errorf("View() missing title or rows:\n%s", view)
	}

	next, _ = m.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if len(m.games) != 0 || m.stats != nil {
		t.Errorf("expected no data without a store, got %+v", m.games)
	}
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score")
	s.DrawColoredText(0, 1, "2048", core.TileColor(2048))
	s.DrawColoredText(6, 1, "64", core.TileColor(64))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Score") || !strings.Contains(lines[1], "2048") || !strings.Contains(lines[1], "64") {
		t.Errorf("RenderScreen() lost text:\n%s", out)
	}

	if styleFor(core.Color(200)).GetBold() {
		t.Error("unknown colors should fall back to the default style")
	}
	if !styleFor(core.ColorBrightYellow).GetBold() {
		t.Error("the win tile color should be bold")
	}
}
