package engine

import (
	"testing"
	"time"
)

func TestSchedulePopDue(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var s Schedule

	s.Add(ScheduledEffect{Kind: TimerLevelClear, Due: base.Add(300 * time.Millisecond), Generation: 1})
	s.Add(ScheduledEffect{Kind: TimerRemoveBalloon, Due: base.Add(100 * time.Millisecond), Generation: 1, BalloonID: "a"})
	s.Add(ScheduledEffect{Kind: TimerRemoveBalloon, Due: base.Add(50 * time.Millisecond), Generation: 0, BalloonID: "stale"})

	if due := s.PopDue(base, 1); len(due) != 0 {
		t.Errorf("Expected nothing due, got %v", due)
	}
	if s.Len() != 2 {
		t.Errorf("Expected stale effect dropped, %d left", s.Len())
	}

	due := s.PopDue(base.Add(time.Second), 1)
	if len(due) != 2 {
		t.Fatalf("Expected 2 due effects, got %d", len(due))
	}
	if due[0].BalloonID != "a" || due[1].Kind != TimerLevelClear {
		t.Errorf("Expected due order, got %+v", due)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty schedule, got %d", s.Len())
	}
}

func TestSchedulePurge(t *testing.T) {
	var s Schedule
	s.Add(ScheduledEffect{Generation: 1})
	s.Add(ScheduledEffect{Generation: 2})
	s.Add(ScheduledEffect{Generation: 1})

	s.Purge(2)
	if s.Len() != 1 {
		t.Errorf("Expected 1 effect of generation 2, got %d", s.Len())
	}
}

func TestStats(t *testing.T) {
	s := NewStats(1)
	if s.Lives != 3 || !s.Unlocked(1) || s.Unlocked(2) {
		t.Fatalf("Unexpected fresh stats %+v", s)
	}

	s.Hit()
	s.Hit()
	if s.Combo != 2 || s.MaxCombo != 2 {
		t.Errorf("Expected combo 2, got %+v", s)
	}

	for i := 0; i < 5; i++ {
		s.Penalize()
	}
	if s.Lives != 0 || s.Combo != 0 || s.MaxCombo != 2 {
		t.Errorf("Expected floor at 0 and kept max combo, got %+v", s)
	}

	s.Credit(1)
	s.Credit(1)
	if s.Level != 2 || s.Stars != 6 {
		t.Errorf("Expected watermark 2 and 6 stars, got %+v", s)
	}
	s.Credit(0)
	if s.Level != 2 {
		t.Error("Watermark must never decrease")
	}

	s.Score = 90
	s.ResetAttempt()
	if s.Score != 0 || s.Lives != 3 || s.MaxCombo != 0 || s.Level != 2 || s.Stars != 9 {
		t.Errorf("Unexpected stats after reset %+v", s)
	}
}
