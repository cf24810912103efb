package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/omnirun/omnirun/internal/world"
)

// ScoreStore persists the best score between launches.
type ScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// noticeSeconds is how long an unlock banner stays up.
const noticeSeconds = 3

// Options configures a Driver. Zero fields take defaults.
type Options struct {
	Viewport world.Viewport
	Tuning   Tuning
	Roster   *world.RosterDef
	Rand     *rand.Rand
	Store    ScoreStore
	Logger   *log.Logger
}

// Driver runs the phase state machine around a Session. The shell pushes
// commands, calls Frame once per rendered frame, then pulls a Snapshot and
// drains Events. A Driver is not safe for concurrent use.
type Driver struct {
	vp     world.Viewport
	tuning Tuning
	roster *world.RosterDef
	rng    *rand.Rand
	store  ScoreStore
	log    *log.Logger

	session *Session
	queue   []Command
	events  []Event
	notices *NoticeFeed
	frames  uint64

	best      int
	savedBest int
	runID     uuid.UUID
	runOpen   bool
}

// NewDriver creates a driver sitting at the menu. The previous best score
// is read from the store; a failed read counts as no previous best.
func NewDriver(opts Options) *Driver {
	if opts.Viewport == (world.Viewport{}) {
		opts.Viewport = world.DefaultViewport()
	}
	if opts.Tuning.TickRate == 0 {
		opts.Tuning = DefaultTuning()
	}
	if opts.Roster == nil {
		opts.Roster = world.DefaultRoster()
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>16|7))
	}
	if opts.Store == nil {
		opts.Store = nopStore{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	d := &Driver{
		vp:      opts.Viewport,
		tuning:  opts.Tuning,
		roster:  opts.Roster,
		rng:     opts.Rand,
		store:   opts.Store,
		log:     opts.Logger,
		notices: NewNoticeFeed(6),
	}

	best, err := d.store.LoadBest()
	if err != nil {
		d.log.Printf("load best score: %v (starting from 0)", err)
		best = 0
	}
	d.best = max(best, 0)
	d.savedBest = d.best

	d.session = d.newSession()
	return d
}

// Push queues a command for the next Frame.
func (d *Driver) Push(cmd Command) {
	d.queue = append(d.queue, cmd)
}

// Frame applies queued commands in order, then advances one tick if the
// game is playing. Paused and game-over frames change nothing but timers
// on banners.
func (d *Driver) Frame() {
	d.frames++
	for _, cmd := range d.queue {
		d.apply(cmd)
		d.collect()
	}
	d.queue = d.queue[:0]

	d.session.Tick()
	d.collect()

	d.notices.Expire(d.frames)
}

// Phase returns the current phase.
func (d *Driver) Phase() Phase { return d.session.Phase }

// Session returns the live session. Callers must not mutate it outside
// the driver's goroutine.
func (d *Driver) Session() *Session { return d.session }

// Best returns the best score seen so far, including the live run.
func (d *Driver) Best() int { return d.best }

// Events returns and clears the events produced since the last call.
func (d *Driver) Events() []Event {
	evs := d.events
	d.events = nil
	return evs
}

// Snapshot returns a read-only copy of the state for rendering.
func (d *Driver) Snapshot() Snapshot {
	snap := d.session.Snapshot()
	snap.Best = d.best
	snap.Notices = d.notices.Lines()
	return snap
}

// Close ends any open run and flushes the best score.
func (d *Driver) Close() error {
	if d.runOpen {
		d.finishRun("closed")
	}
	return d.saveBest()
}

func (d *Driver) apply(cmd Command) {
	s := d.session
	switch cmd {
	case CmdStart:
		if s.Phase == PhaseMenu {
			d.startRun()
		}
	case CmdJump:
		s.Jump()
	case CmdTransform:
		s.Transform()
	case CmdPauseToggle:
		switch s.Phase {
		case PhasePlaying:
			s.Phase = PhasePaused
		case PhasePaused:
			s.Phase = PhasePlaying
		}
	case CmdResume:
		if s.Phase == PhasePaused {
			s.Phase = PhasePlaying
		}
	case CmdRestart:
		if s.Phase == PhaseMenu {
			return
		}
		if d.runOpen {
			d.finishRun("restarted")
		}
		d.startRun()
	case CmdQuit:
		if s.Phase == PhaseMenu {
			return
		}
		if d.runOpen {
			d.finishRun("quit")
		}
		d.notices.Clear()
		d.session = d.newSession()
	}
}

// collect moves session events into the driver and reacts to the ones the
// driver owns.
func (d *Driver) collect() {
	s := d.session
	if s.Score > d.best {
		d.best = s.Score
	}
	for _, ev := range s.drainEvents() {
		d.events = append(d.events, ev)
		switch ev.Kind {
		case EventUnlock:
			name := ev.Form
			if i := s.Roster.Index(ev.Form); i >= 0 {
				name = s.Roster.Form(i).Name
			}
			d.notices.Add(fmt.Sprintf("%s unlocked!", name), d.frames+noticeSeconds*uint64(d.tuning.TickRate))
		case EventGameOver:
			if d.runOpen {
				d.finishRun("game over")
			}
		}
	}
}

func (d *Driver) newSession() *Session {
	return NewSession(d.vp, d.tuning, d.roster, d.rng)
}

func (d *Driver) startRun() {
	d.notices.Clear()
	d.session = d.newSession()
	d.session.begin()
	d.runID = uuid.New()
	d.runOpen = true
	d.log.Printf("run %s started (best %d)", d.runID, d.best)
}

func (d *Driver) finishRun(reason string) {
	s := d.session
	d.runOpen = false
	d.log.Printf("run %s %s: score=%d coins=%d distance=%.0fm time=%.1fs",
		d.runID, reason, s.Score, s.CoinsCollected, s.Distance, s.Elapsed())
	if err := d.saveBest(); err != nil {
		d.log.Printf("save best score: %v", err)
	}
}

// saveBest writes the best score if it improved since the last write. A
// failed write is retried on the next run end.
func (d *Driver) saveBest() error {
	if d.best <= d.savedBest {
		return nil
	}
	if err := d.store.SaveBest(d.best); err != nil {
		return fmt.Errorf("save best %d: %w", d.best, err)
	}
	d.savedBest = d.best
	return nil
}

type nopStore struct{}

func (nopStore) LoadBest() (int, error) { return 0, nil }
func (nopStore) SaveBest(int) error     { return nil }
