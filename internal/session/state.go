package session

import (
	"math/rand/v2"
	"time"
)

// ModeKind selects the traversal scope of a session.
type ModeKind int

const (
	ModeFullTest       ModeKind = iota // Every category, in first-seen order
	ModeSingleCategory                 // One category's questions only
)

// Mode is the traversal mode of a session.
type Mode struct {
	Kind     ModeKind
	Category string // Set only for ModeSingleCategory
}

// FullTest returns the full-test mode.
func FullTest() Mode {
	return Mode{Kind: ModeFullTest}
}

// SingleCategory returns a practice mode restricted to category.
func SingleCategory(category string) Mode {
	return Mode{Kind: ModeSingleCategory, Category: category}
}

func (m Mode) String() string {
	if m.Kind == ModeSingleCategory {
		return "practice: " + m.Category
	}
	return "full test"
}

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseNotStarted     SessionPhase = iota // Intake screen
	PhaseInProgress                         // Serving questions
	PhaseShowingResults                     // Finished, results visible
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseShowingResults:
		return "showing-results"
	default:
		return "unknown"
	}
}

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Options carries the sources of randomness and time used by a session.
type Options struct {
	Shuffler Shuffler
	Clock    func() time.Time
}

// DefaultOptions returns options backed by a randomly seeded PCG and the wall clock.
func DefaultOptions() Options {
	return Options{
		Shuffler: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Clock:    time.Now,
	}
}

// SeededOptions returns options whose shuffles are a deterministic function of seed.
func SeededOptions(seed uint64) Options {
	return Options{
		Shuffler: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Clock:    time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Shuffler == nil {
		o.Shuffler = d.Shuffler
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	return o
}

// SessionState is the mutable record of one user's attempt. It is owned by
// exactly one session and must not be shared across sessions.
type SessionState struct {
	// ID is the UUID for this session.
	ID string

	// Mode is the traversal mode chosen at start.
	Mode Mode

	// CategoryOrder lists the categories to traverse. In single-category
	// mode it holds just the chosen category.
	CategoryOrder []string

	// CategoryPositions maps every category to its shuffled question IDs.
	// Fixed for the lifetime of the session once generated.
	CategoryPositions map[string][]int

	// CategoryCursor indexes CategoryOrder.
	CategoryCursor int

	// QuestionCursor indexes the active category's sequence. A value equal to
	// the sequence length means the category is exhausted.
	QuestionCursor int

	// Answers maps question ID to the selected option index.
	Answers map[int]int

	// Phase is the current session phase.
	Phase SessionPhase

	// StartedAt is when the session entered PhaseInProgress.
	StartedAt time.Time

	// FinishedAt is when the session reached PhaseShowingResults.
	FinishedAt time.Time

	clock func() time.Time
}

// New returns a session that has not been started yet.
func New() *SessionState {
	return &SessionState{
		Phase:             PhaseNotStarted,
		CategoryPositions: make(map[string][]int),
		Answers:           make(map[int]int),
		clock:             time.Now,
	}
}

// Position describes where the session is, for progress displays.
type Position struct {
	Category    string
	Index       int // Zero-based cursor within the category
	CategoryLen int
	CategoryNum int // One-based index of the category in CategoryOrder
	Categories  int
	Answered    int
}

// CurrentPosition returns the session's navigation position.
func CurrentPosition(state *SessionState) Position {
	pos := Position{
		Index:      state.QuestionCursor,
		Categories: len(state.CategoryOrder),
		Answered:   len(state.Answers),
	}
	if category, ok := ActiveCategory(state); ok {
		pos.Category = category
		pos.CategoryLen = len(state.CategoryPositions[category])
		pos.CategoryNum = state.CategoryCursor + 1
	}
	return pos
}

// Elapsed returns how long the session has been running, or ran for if finished.
func Elapsed(state *SessionState) time.Duration {
	switch state.Phase {
	case PhaseInProgress:
		return state.now().Sub(state.StartedAt)
	case PhaseShowingResults:
		return state.FinishedAt.Sub(state.StartedAt)
	default:
		return 0
	}
}

func (s *SessionState) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}
