package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/yjb94/CulinaryClassWars/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Machine drives the four-step reveal of a roster. It is the single writer
// of its state: every mutation, including animation ticks, happens under mu.
type Machine struct {
	mu        sync.Mutex
	rng       *rand.Rand
	interval  time.Duration
	newRoster func(*rand.Rand) []models.Participant
	listener  func(models.Snapshot)

	roster  []models.Participant
	stage   models.Stage
	message string
	version uint64
	anim    *animation
	closed  bool
}

// Option configures a Machine
type Option func(*Machine)

// WithSeed makes the roster draws and shuffles deterministic
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		m.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	}
}

// WithInterval overrides RevealInterval
func WithInterval(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithRosterFunc replaces the random roster draw, e.g. to stage a known
// distribution
func WithRosterFunc(fn func(*rand.Rand) []models.Participant) Option {
	return func(m *Machine) {
		m.newRoster = fn
	}
}

// WithListener registers a callback receiving a snapshot after every change.
// It runs outside the machine lock and must not block for long.
func WithListener(fn func(models.Snapshot)) Option {
	return func(m *Machine) {
		m.listener = fn
	}
}

// NewMachine creates a machine at StageInit with a fresh roster
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		interval:  RevealInterval,
		newRoster: NewRoster,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.mu.Lock()
	m.reset()
	m.mu.Unlock()
	return m
}

// SetListener replaces the change callback
func (m *Machine) SetListener(fn func(models.Snapshot)) {
	m.mu.Lock()
	m.listener = fn
	m.mu.Unlock()
}

// Initialize cancels any running animation and starts over with a freshly
// drawn roster
func (m *Machine) Initialize() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.reset()
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
}

// Advance performs the work of the current stage and moves to the next one.
// The minority step only starts its animation; Advance returns right away.
func (m *Machine) Advance() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.cancelLocked()

	from := m.stage
	switch m.stage {
	case models.StageInit:
		m.revealJudges()
	case models.StageJudgesRevealed:
		m.startMinorityReveal()
	case models.StageMinorityRevealed:
		m.revealMajority()
	case models.StageMajorityRevealed:
		m.reset()
	}
	m.stage = from.Next()
	m.version++
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if debug {
		log.Printf("reveal: advanced %s -> %s (%q)", from, snap.Stage, snap.Message)
	}
	m.notify(snap)
}

// Snapshot returns a copy of the current state
func (m *Machine) Snapshot() models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Close stops any running animation. Further Advance and Initialize calls
// are ignored; Snapshot keeps working.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked()
	m.closed = true
}

// Animating reports whether the minority animation is running
func (m *Machine) Animating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.anim != nil
}

// AnimationDone returns a channel closed once the current animation has
// stopped. With no animation running the channel is already closed.
func (m *Machine) AnimationDone() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.anim == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return m.anim.done
}

// reset draws a new roster and rewinds to StageInit (must hold mu)
func (m *Machine) reset() {
	m.cancelLocked()
	m.roster = m.newRoster(m.rng)
	m.stage = models.StageInit
	m.message = ""
	m.version++
}

func (m *Machine) revealJudges() {
	for _, j := range Judges {
		m.roster[j.Index()].Revealed = true
	}
	m.message = MessageJudges
}

func (m *Machine) startMinorityReveal() {
	plan := newMinorityReveal(m.rng, m.roster)
	m.message = fmt.Sprintf(messageRevealAllFmt, RosterSize)

	a := newAnimation(m.interval)
	m.anim = a
	if debug {
		log.Printf("reveal: minority animation started, target=%d black=%d white=%d judges=%d/%d",
			plan.target, len(plan.black), len(plan.white), plan.judgeBlack, plan.judgeWhite)
	}
	go m.run(a, plan)
}

func (m *Machine) revealMajority() {
	for i := range m.roster {
		m.roster[i].Revealed = true
	}
	black, white := countChoices(m.roster)
	switch {
	case black == white:
		m.message = MessageTie
	case black > white:
		m.message = fmt.Sprintf(messageMajorityFmt, models.Black.Label(), black)
	default:
		m.message = fmt.Sprintf(messageMajorityFmt, models.White.Label(), white)
	}
}

// run is the animation goroutine; it exits on completion or cancellation
func (m *Machine) run(a *animation, plan *minorityReveal) {
	defer close(a.done)
	for {
		select {
		case <-a.stop:
			return
		case <-a.ticker.C:
			snap, finished, current := m.tick(a, plan)
			if !current {
				return
			}
			m.notify(snap)
			if finished {
				return
			}
		}
	}
}

// tick applies one animation step. current is false when a has been
// superseded, in which case nothing is touched.
func (m *Machine) tick(a *animation, plan *minorityReveal) (snap models.Snapshot, finished, current bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.anim != a {
		return snap, false, false
	}

	if plan.done() {
		m.message = fmt.Sprintf(messageParityFmt, plan.target, plan.target)
		m.cancelLocked()
		finished = true
		if debug {
			log.Printf("reveal: minority animation finished at %d : %d", plan.target, plan.target)
		}
	} else if i, ok := plan.next(); ok {
		m.roster[i].Revealed = true
	}
	m.version++
	return m.snapshotLocked(), finished, true
}

// cancelLocked stops the running animation, if any (must hold mu)
func (m *Machine) cancelLocked() {
	if m.anim == nil {
		return
	}
	m.anim.cancel()
	m.anim = nil
}

func (m *Machine) snapshotLocked() models.Snapshot {
	participants := make([]models.Participant, len(m.roster))
	copy(participants, m.roster)
	return models.Snapshot{
		Stage:        m.stage,
		Participants: participants,
		Message:      m.message,
		Animating:    m.anim != nil,
		Version:      m.version,
	}
}

func (m *Machine) notify(snap models.Snapshot) {
	m.mu.Lock()
	fn := m.listener
	m.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// animation is the cancellable ticker handle of the minority reveal
type animation struct {
	ticker *time.Ticker
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newAnimation(interval time.Duration) *animation {
	return &animation{
		ticker: time.NewTicker(interval),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (a *animation) cancel() {
	a.once.Do(func() {
		a.ticker.Stop()
		close(a.stop)
	})
}
