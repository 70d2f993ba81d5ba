package renderers

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/problem"
	"github.com/lixenwraith/balloon-math/render"
)

func newTestOrchestrator(t *testing.T) (*render.RenderOrchestrator, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	o := render.NewRenderOrchestrator(screen)
	o.Register(NewFieldRenderer(), render.PriorityBackground)
	o.Register(NewBalloonRenderer(), render.PriorityEntities)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewOptionsRenderer(), render.PriorityUI)
	o.Register(NewScreenRenderer(), render.PriorityOverlay)
	return o, screen
}

// screenText returns the visible text of the whole screen, one line per row
func screenText(screen tcell.SimulationScreen) string {
	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func playingSnapshot() *engine.Snapshot {
	b := components.NewBalloon(100, 200, 1, components.CategoryStar,
		problem.Problem{Question: "3 + 4", Answer: 7}, 2)
	return &engine.Snapshot{
		State:      engine.StatePlaying,
		Field:      engine.DefaultField(),
		LevelID:    3,
		LevelTitle: "Day 3: Growing Strong",
		Balloons:   []components.Balloon{*b},
		Options:    []int{2, 5, 7, 9, 11, 14},
		Score:      40,
		Threshold:  200,
		Lives:      2,
		Combo:      3,
		Multiplier: 2,
		Frozen:     true,
	}
}

func TestRenderPlaying(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	o.RenderFrame(playingSnapshot(), 0, time.Now())
	text := screenText(screen)

	for _, want := range []string{"★ 3 + 4", "40/200", "♥♥♡", "combo x3", "×2", "❄", "14"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q on screen:\n%s", want, text)
		}
	}
	if strings.Contains(text, "PAUSED") {
		t.Error("Pause overlay drawn while playing")
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := playingSnapshot()
	snap.State = engine.StatePaused
	o.RenderFrame(snap, 0, time.Now())

	if text := screenText(screen); !strings.Contains(text, "PAUSED") || !strings.Contains(text, "Growing Strong") {
		t.Errorf("Expected pause panel:\n%s", text)
	}
}

func TestRenderPoppingBalloon(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := playingSnapshot()
	snap.Balloons[0].Popping = true
	o.RenderFrame(snap, 0, time.Now())

	text := screenText(screen)
	if strings.Contains(text, "3 + 4") || !strings.Contains(text, "✺") {
		t.Errorf("Expected burst marker instead of the label:\n%s", text)
	}
}

func TestRenderBalloonAboveField(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := playingSnapshot()
	snap.Balloons[0].Y = -150
	o.RenderFrame(snap, 0, time.Now())

	if text := screenText(screen); strings.Contains(text, "3 + 4") {
		t.Errorf("Balloon above the field must be clipped:\n%s", text)
	}
}

func TestRenderScreens(t *testing.T) {
	levels := []engine.LevelSummary{
		{ID: 1, Title: "Day 1: Baby Steps", Description: "Addition 1-5", Unlocked: true},
		{ID: 2, Title: "Day 2: Counting Up", Description: "Addition 1-8"},
	}

	tests := []struct {
		name string
		snap engine.Snapshot
		want []string
	}{
		{"splash", engine.Snapshot{State: engine.StateSplash, SplashReady: true}, []string{"BALLOON MATH", "press enter"}},
		{"home", engine.Snapshot{State: engine.StateHome, Stars: 6, Unlocked: 1, Levels: levels, Muted: true}, []string{"★ 6", "sound off"}},
		{"map", engine.Snapshot{State: engine.StateLevelMap, Levels: levels}, []string{"CHOOSE A LEVEL", " 1 ", "··", "Baby Steps", "Addition 1-5"}},
		{"complete", engine.Snapshot{State: engine.StateLevelComplete, LevelID: 1, LevelTitle: "Day 1", Score: 210, MaxCombo: 9}, []string{"LEVEL COMPLETE!", "Score 210", "Best combo 9"}},
		{"game over", engine.Snapshot{State: engine.StateGameOver, LevelID: 1, Score: 30}, []string{"GAME OVER", "r: retry"}},
		{"trophy", engine.Snapshot{State: engine.StateFinalTrophy, LevelID: 20, Score: 250}, []string{"CHAMPION", "Final score 250"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, screen := newTestOrchestrator(t)
			snap := tt.snap
			snap.Field = engine.DefaultField()
			o.RenderFrame(&snap, 0, time.Now())
			text := screenText(screen)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q on screen:\n%s", want, text)
				}
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		cat  components.Category
		want string
	}{
		{components.CategoryNormal, "2 × 3"},
		{components.CategoryGolden, "◆ 2 × 3"},
		{components.CategoryBomb, "✖ 2 × 3"},
	}
	for _, tt := range tests {
		b := components.NewBalloon(0, 0, 1, tt.cat, problem.Problem{Question: "2 × 3", Answer: 6}, 0)
		if got := Label(b); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}
