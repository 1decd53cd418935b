package lobby

import (
	"sync"
	"time"

	"github.com/vytor/chessroyale/internal/board"
	"github.com/vytor/chessroyale/internal/errors"
	"github.com/vytor/chessroyale/internal/metrics"
	"github.com/vytor/chessroyale/internal/pgn"
)

type Phase string

const (
	PhaseMenu    Phase = "menu"
	PhaseWaiting Phase = "waiting"
	PhasePlaying Phase = "playing"
)

// SessionView is a snapshot of a session.
type SessionView struct {
	ID       string    `json:"id"`
	Phase    Phase     `json:"phase"`
	GameCode string    `json:"game_code,omitempty"`
	LastSeen time.Time `json:"last_seen"`
}

// Session is one client's menu state and board. All methods are safe for
// concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	phase    Phase
	code     string
	ctrl     *board.Controller
	lastSeen time.Time
	now      func() time.Time
}

// NewSession creates a session in the menu phase. opts are passed to the
// board controller.
func NewSession(id string, opts ...board.Option) *Session {
	return newSession(id, time.Now, opts...)
}

func newSession(id string, now func() time.Time, opts ...board.Option) *Session {
	return &Session{
		ID:       id,
		phase:    PhaseMenu,
		ctrl:     board.NewController(opts...),
		lastSeen: now(),
		now:      now,
	}
}

// CreateGame generates a fresh code and waits for StartGame.
func (s *Session) CreateGame() (SessionView, error) {
	code, err := GenerateCode()
	if err != nil {
		return SessionView{}, errors.NewInternalError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.code = code
	s.phase = PhaseWaiting
	s.ctrl.Reset()
	metrics.GamesCreated.WithLabelValues("create").Inc()
	return s.viewLocked(), nil
}

// JoinGame enters the playing phase under code. The code is not checked
// against any registry.
func (s *Session) JoinGame(code string) (SessionView, error) {
	code = NormalizeCode(code)
	if code == "" {
		return SessionView{}, errors.NewValidationError("code", "cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.code = code
	s.phase = PhasePlaying
	s.ctrl.Reset()
	metrics.GamesCreated.WithLabelValues("join").Inc()
	return s.viewLocked(), nil
}

// StartGame moves a created game from waiting to playing.
func (s *Session) StartGame() (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.phase != PhaseWaiting {
		return SessionView{}, errors.NewBadRequestError("no created game is waiting to start")
	}
	s.phase = PhasePlaying
	return s.viewLocked(), nil
}

// Activate forwards a square activation to the board.
func (s *Session) Activate(row, col int) (board.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.phase != PhasePlaying {
		return board.View{}, errNotPlaying()
	}
	before := len(s.ctrl.View().History)
	v := s.ctrl.Activate(row, col)
	if len(v.History) > before {
		metrics.MovesApplied.Inc()
	}
	return v, nil
}

func (s *Session) Reset() (board.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	if s.phase != PhasePlaying {
		return board.View{}, errNotPlaying()
	}
	return s.ctrl.Reset(), nil
}

func (s *Session) Board() board.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.ctrl.View()
}

// PGN exports the session's game with the game code as Site.
func (s *Session) PGN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.ctrl.PGN(pgn.Tag{Name: "Site", Value: s.code})
}

// FullMoveNumber is the number of the move about to be played.
func (s *Session) FullMoveNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.FullMoveNumber()
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

func (s *Session) touchLocked() {
	s.lastSeen = s.now()
}

func (s *Session) viewLocked() SessionView {
	return SessionView{
		ID:       s.ID,
		Phase:    s.phase,
		GameCode: s.code,
		LastSeen: s.lastSeen,
	}
}

func errNotPlaying() error {
	return errors.NewBadRequestError("game has not started")
}
