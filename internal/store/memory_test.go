package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

var acceptAll = game.DictionaryFunc(func(_ context.Context, w, _ string) bool { return w != "" })

func TestMemory_SaveUpdate(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s := game.NewSession(acceptAll, game.WithID("g1"))
	require.NoError(t, s.Reset("silkworm"))
	require.NoError(t, st.Save(ctx, s))
	assert.Equal(t, 1, st.Len())

	err := st.Update(ctx, "g1", func(s *game.Session) error {
		_, err := s.Submit(ctx, "silk")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Score())
}

func TestMemory_NotFound(t *testing.T) {
	st := NewMemoryStore()
	err := st.Update(context.Background(), "nope", func(*game.Session) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_PropagatesError(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, game.NewSession(acceptAll, game.WithID("g1"))))

	want := errors.New("boom")
	err := st.Update(ctx, "g1", func(*game.Session) error { return want })
	assert.ErrorIs(t, err, want)
}

func TestMemory_CancelledContext(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), game.NewSession(acceptAll, game.WithID("g1"))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := st.Update(ctx, "g1", func(*game.Session) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemory_SerializesSubmissions(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	s := game.NewSession(acceptAll, game.WithID("g1"))
	require.NoError(t, s.Reset("silkworm"))
	require.NoError(t, st.Save(ctx, s))

	var wg sync.WaitGroup
	accepted := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, "g1", func(s *game.Session) error {
				out, err := s.Submit(ctx, "worm")
				accepted <- out.Accepted()
				return err
			})
		}()
	}
	wg.Wait()
	close(accepted)

	n := 0
	for ok := range accepted {
		if ok {
			n++
		}
	}
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"worm"}, s.UsedWords())
}
