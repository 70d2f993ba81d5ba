package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/balloon-math/audio"
	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/event"
)

// ScoreSystem resolves answers and misses into score, combo and lives
type ScoreSystem struct{}

// NewScoreSystem creates the score system
func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

// EventTypes returns the event types ScoreSystem handles
func (s *ScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAnswerSelected,
		event.EventBalloonMissed,
	}
}

// HandleEvent processes answer and miss events of the playing session
func (s *ScoreSystem) HandleEvent(g *engine.Game, ev event.GameEvent) {
	sess := g.Session()
	if sess == nil || g.State() != engine.StatePlaying {
		return
	}

	switch ev.Type {
	case event.EventAnswerSelected:
		payload, ok := ev.Payload.(*event.AnswerPayload)
		if !ok {
			return
		}
		s.Answer(sess, payload.Value, g.Now())
	case event.EventBalloonMissed:
		// One penalty per tick regardless of how many balloons escaped
		if payload, ok := ev.Payload.(*event.MissPayload); ok {
			log.Printf("miss: %d balloons escaped on level %d", payload.Count, sess.Level.ID)
		}
		Penalize(sess)
	}
}

// Answer matches a value against the live balloons
// A match pops the first balloon carrying that answer; no match costs a life
func (s *ScoreSystem) Answer(sess *engine.Session, value int, now time.Time) {
	b := sess.FindByAnswer(value)
	if b == nil {
		Penalize(sess)
		return
	}
	sess.Notify(audio.SoundCorrect)
	Pop(sess, b, now)
}

// Penalize removes a life and breaks the combo
// Running out of lives ends the attempt unless the level is already won
func Penalize(sess *engine.Session) {
	sess.Notify(audio.SoundWrong)
	if sess.Stats.Penalize() && !sess.Cleared {
		sess.Emit(event.EventLivesDepleted, nil)
	}
}

// Pop resolves a balloon through its category effect; popping twice is a no-op
func Pop(sess *engine.Session, b *components.Balloon, now time.Time) {
	if b.Popping {
		return
	}
	b.Popping = true
	sess.Notify(audio.SoundPop)
	sess.Burst(b)
	sess.After(constants.SettleDelay, now, engine.TimerRemoveBalloon, b.ID)
	sess.RefreshOptions()

	eff := b.Category.Effect()
	switch eff.Effect {
	case components.EffectPenalty:
		Penalize(sess)
		return
	case components.EffectFreeze:
		sess.FreezeUntil = now.Add(eff.Duration)
	case components.EffectMultiplier:
		sess.MultiplierUntil = now.Add(eff.Duration)
	}

	stats := sess.Stats
	gain := constants.BaseScore*sess.Multiplier(now) + eff.Bonus + stats.Combo*constants.ComboWeight
	stats.Score += gain
	stats.Hit()

	if !sess.Cleared && stats.Score >= constants.ScoreThreshold {
		sess.Cleared = true
		sess.After(constants.SettleDelay, now, engine.TimerLevelClear, "")
		log.Printf("score: level %d cleared with %d", sess.Level.ID, stats.Score)
	}
}
