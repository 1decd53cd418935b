package lobby

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessroyale/internal/errors"
)

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 190)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeCode("  abc123 "))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestSession_CreateThenStart(t *testing.T) {
	s := NewSession("s1")
	assert.Equal(t, PhaseMenu, s.View().Phase)

	v, err := s.CreateGame()
	require.NoError(t, err)
	assert.Equal(t, PhaseWaiting, v.Phase)
	assert.Len(t, v.GameCode, CodeLength)

	_, err = s.Activate(6, 4)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.As(err).Status)

	v, err = s.StartGame()
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, v.Phase)

	s.Activate(6, 4)
	bv, err := s.Activate(4, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"e4"}, bv.History)
	assert.Equal(t, 1, s.FullMoveNumber())
}

func TestSession_StartWithoutCreate(t *testing.T) {
	s := NewSession("s1")
	_, err := s.StartGame()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeBadRequest, errors.As(err).Code)
}

func TestSession_Join(t *testing.T) {
	s := NewSession("s1")

	_, err := s.JoinGame("   ")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.As(err).Code)
	assert.Equal(t, PhaseMenu, s.View().Phase)

	v, err := s.JoinGame(" zz9xy1 ")
	require.NoError(t, err)
	assert.Equal(t, PhasePlaying, v.Phase)
	assert.Equal(t, "ZZ9XY1", v.GameCode)

	assert.Contains(t, s.PGN(), `[Site "ZZ9XY1"]`)
}

func TestSession_NewGameResetsBoard(t *testing.T) {
	s := NewSession("s1")
	_, err := s.JoinGame("ABCDEF")
	require.NoError(t, err)
	s.Activate(6, 4)
	s.Activate(4, 4)

	_, err = s.CreateGame()
	require.NoError(t, err)
	assert.Empty(t, s.Board().History)
}

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager(time.Hour)

	s, created := m.GetOrCreate("")
	assert.True(t, created)
	assert.NotEmpty(t, s.ID)

	again, created := m.GetOrCreate(s.ID)
	assert.False(t, created)
	assert.Same(t, s, again)

	other, created := m.GetOrCreate("unknown")
	assert.True(t, created)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, m.Len())
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	m := NewManager(time.Hour)
	a := m.Create()
	b := m.Create()

	_, err := a.JoinGame("AAAAAA")
	require.NoError(t, err)
	a.Activate(6, 4)
	a.Activate(4, 4)

	assert.Len(t, a.Board().History, 1)
	assert.Empty(t, b.Board().History)
	assert.Equal(t, PhaseMenu, b.View().Phase)
}

func TestManager_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(time.Hour)
	m.now = func() time.Time { return now }

	stale := m.Create()
	now = now.Add(50 * time.Minute)
	fresh := m.Create()
	now = now.Add(20 * time.Minute)

	assert.Equal(t, 1, m.Sweep())
	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
}

func TestManager_RunStopsOnCancel(t *testing.T) {
	m := NewManager(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
