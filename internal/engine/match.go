package engine

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Match owns the full state of one game: ball, cannons, projectiles, scores,
// round lifecycle, and the countdown clock. All state is touched only from
// Step; there is no concurrent mutation. Cooldown stamps and the once-per-
// second countdown both derive from the single tick counter, so they can
// never skew against each other.
type Match struct {
	rules    Rules
	tickRate int

	ball        *Ball
	cannons     [2]*Cannon
	turns       [2]*turnController
	projectiles []*Projectile

	score    [2]int
	round    int
	timeLeft int
	tick     int64
	over     bool
	winner   PlayerID

	left, right Decider
	rng         *rand.Rand
	logger      *log.Logger
}

// Option configures a Match at construction time.
type Option func(*Match)

// WithLogger sets the diagnostics logger. Decision-function failures are
// logged there and nowhere else; they never surface as errors.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) { m.logger = l }
}

// NewMatch creates a match between two deciders. Call Reset before stepping.
func NewMatch(rules Rules, left, right Decider, opts ...Option) *Match {
	m := &Match{
		rules:  rules,
		left:   left,
		right:  right,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Rules returns the rules the match runs with.
func (m *Match) Rules() Rules {
	return m.rules
}

// Reset initializes or restarts the match for the given tick rate and seed.
// The same seed and deciders replay the exact same match.
func (m *Match) Reset(tickRate int, seed int64) {
	m.tickRate = tickRate
	m.rng = rand.New(rand.NewSource(seed))

	m.ball = NewBall(m.rules.BallRadius)
	spawns := m.rules.SpawnPoints()
	m.ball.PlaceAt(spawns[0])

	m.cannons[0] = NewCannon(Player1, m.rules)
	m.cannons[1] = NewCannon(Player2, m.rules)
	m.turns[0] = newTurnController(m.cannons[0], m.left, m.rules, tickRate, m.rng, m.logger)
	m.turns[1] = newTurnController(m.cannons[1], m.right, m.rules, tickRate, m.rng, m.logger)

	m.projectiles = nil
	m.score = [2]int{}
	m.round = 0
	m.timeLeft = m.rules.MatchSeconds
	m.tick = 0
	m.over = false
	m.winner = NoPlayer
}

// Step advances the match by one tick: bot decisions, physics integration,
// collision resolution, then scoring. It never blocks and never fails.
func (m *Match) Step() StepEvents {
	var ev StepEvents
	if m.over {
		ev.MatchOver = true
		return ev
	}

	m.tick++

	// Countdown clock in whole seconds off the shared tick counter.
	if m.tick%int64(m.tickRate) == 0 {
		m.timeLeft--
		if m.timeLeft <= 0 {
			m.finishByClock()
			ev.MatchOver = true
			return ev
		}
	}

	for _, t := range m.turns {
		if proj := t.Step(m.tick, m.ball); proj != nil {
			m.projectiles = append(m.projectiles, proj)
			ev.Fired = append(ev.Fired, FireEvent{Player: proj.Owner, Type: proj.Type, Payload: proj.Payload})
		}
	}

	var res PhysicsResult
	m.projectiles, res = StepPhysics(m.rules, m.ball, m.projectiles)
	ev.Hits = res.Hits

	if res.Goal != NoPlayer {
		ev.Goal = res.Goal
		m.award(res.Goal, &ev)
		return ev
	}

	if winner := m.stalemateWinner(); winner != NoPlayer {
		ev.Stalemate = winner
		m.award(winner, &ev)
	}

	return ev
}

// award gives a point and either ends the match or starts the next round.
func (m *Match) award(p PlayerID, ev *StepEvents) {
	m.score[p-1]++
	if m.score[p-1] >= m.rules.WinningScore {
		m.over = true
		m.winner = p
		ev.MatchOver = true
		return
	}
	m.resetRound()
	ev.RoundStarted = true
}

// resetRound advances the round counter, repositions the ball at the next
// cyclic spawn point with jitter, clears in-flight projectiles, restores both
// cannons' ammunition, and puts both turn controllers back into cooldown.
func (m *Match) resetRound() {
	m.round++
	spawns := m.rules.SpawnPoints()
	spawn := spawns[m.round%len(spawns)]
	spawn.X += (m.rng.Float64()*2 - 1) * m.rules.SpawnJitter
	spawn.Y += (m.rng.Float64()*2 - 1) * m.rules.SpawnJitter
	m.ball.PlaceAt(spawn)

	m.projectiles = nil
	for i, c := range m.cannons {
		c.ResetAmmo(m.rules)
		m.turns[i].resetRound(m.tick)
	}
}

// stalemateWinner checks the round-ending deadlock: ball at rest, no
// ammunition left on either side, and nothing in flight. Shots accepted but
// still charging count as in flight until they spawn.
// The point goes to the player whose cannon is farther from the ball's
// horizontal position; an exact distance tie goes to player 2.
func (m *Match) stalemateWinner() PlayerID {
	if m.ball.Moving() || len(m.projectiles) > 0 {
		return NoPlayer
	}
	for i, c := range m.cannons {
		if c.PowerAmmo > 0 || c.PrecisionAmmo > 0 || m.turns[i].Charging() {
			return NoPlayer
		}
	}

	d1 := math.Abs(m.ball.Pos.X - m.cannons[0].Pos.X)
	d2 := math.Abs(m.ball.Pos.X - m.cannons[1].Pos.X)
	if d1 > d2 {
		return Player1
	}
	return Player2
}

// finishByClock ends the match when the countdown reaches zero: higher score
// wins, a score tie goes to whoever fired fewer bullets, and a full tie goes
// to player 2.
func (m *Match) finishByClock() {
	m.over = true
	switch {
	case m.score[0] > m.score[1]:
		m.winner = Player1
	case m.score[1] > m.score[0]:
		m.winner = Player2
	case m.cannons[0].ShotsFired < m.cannons[1].ShotsFired:
		m.winner = Player1
	default:
		m.winner = Player2
	}
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.over
}

// Winner returns the winning player once the match is over.
func (m *Match) Winner() PlayerID {
	return m.winner
}

// Score returns the current score for both players.
func (m *Match) Score() (int, int) {
	return m.score[0], m.score[1]
}

// Round returns the zero-based round counter.
func (m *Match) Round() int {
	return m.round
}

// TimeLeft returns the remaining match time in whole seconds.
func (m *Match) TimeLeft() int {
	return m.timeLeft
}

// Tick returns the current tick counter.
func (m *Match) Tick() int64 {
	return m.tick
}
