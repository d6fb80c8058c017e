package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/config"
)

type stubLookup struct {
	calls atomic.Int32
	fn    func(ctx context.Context, word, lang string) (bool, error)
}

func (s *stubLookup) Lookup(ctx context.Context, word, lang string) (bool, error) {
	s.calls.Add(1)
	return s.fn(ctx, word, lang)
}

func TestWordList(t *testing.T) {
	l := NewWordList([]string{"silk", "worm"}, "en")
	ctx := context.Background()

	ok, err := l.Lookup(ctx, "silk", "en")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = l.Lookup(ctx, "silkk", "en")
	assert.False(t, ok)
	ok, _ = l.Lookup(ctx, "", "en")
	assert.False(t, ok)
	ok, _ = l.Lookup(ctx, "silk", "fr")
	assert.False(t, ok, "other languages are not covered")

	anyLang := NewWordList([]string{"silk"}, "")
	ok, _ = anyLang.Lookup(ctx, "silk", "fr")
	assert.True(t, ok)
}

func TestLoadWordList_Embedded(t *testing.T) {
	l, err := LoadWordList("", "en")
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 1000)

	for _, w := range []string{"silk", "worm", "milk", "silkworm"} {
		ok, err := l.Lookup(context.Background(), w, "en")
		require.NoError(t, err)
		assert.True(t, ok, w)
	}
}

func TestLoadWordList_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("Apple\nbanana\n"), 0o644))

	l, err := LoadWordList(path, "en")
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	_, err = LoadWordList(filepath.Join(t.TempDir(), "missing"), "en")
	assert.ErrorContains(t, err, "dictionary: load word list")
}

func TestOracle_ErrorIsNotReal(t *testing.T) {
	src := &stubLookup{fn: func(context.Context, string, string) (bool, error) {
		return true, errors.New("boom")
	}}
	o := NewOracle(src, 0)
	assert.False(t, o.IsRealWord(context.Background(), "silk", "en"))
}

func TestOracle_EmptyWordSkipsLookup(t *testing.T) {
	src := &stubLookup{fn: func(context.Context, string, string) (bool, error) { return true, nil }}
	o := NewOracle(src, 0)
	assert.False(t, o.IsRealWord(context.Background(), "", "en"))
	assert.Zero(t, src.calls.Load())
}

func TestOracle_Timeout(t *testing.T) {
	src := &stubLookup{fn: func(ctx context.Context, _, _ string) (bool, error) {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(5 * time.Second):
			return true, nil
		}
	}}
	o := NewOracle(src, 20*time.Millisecond)

	start := time.Now()
	assert.False(t, o.IsRealWord(context.Background(), "silk", "en"))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCached(t *testing.T) {
	fail := true
	src := &stubLookup{fn: func(_ context.Context, word, _ string) (bool, error) {
		if fail {
			return false, errors.New("unavailable")
		}
		return word == "silk", nil
	}}
	c := NewCached(src, 0)
	ctx := context.Background()

	_, err := c.Lookup(ctx, "silk", "en")
	require.Error(t, err)
	assert.Zero(t, c.Len(), "failures are not cached")

	fail = false
	for i := 0; i < 3; i++ {
		ok, err := c.Lookup(ctx, "silk", "en")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := c.Lookup(ctx, "milk", "en")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, int32(3), src.calls.Load())
	assert.Equal(t, 2, c.Len())
}

func TestCached_KeyedByLanguage(t *testing.T) {
	src := &stubLookup{fn: func(_ context.Context, _, lang string) (bool, error) {
		return lang == "en", nil
	}}
	c := NewCached(src, 0)

	ok, _ := c.Lookup(context.Background(), "chat", "en")
	assert.True(t, ok)
	ok, _ = c.Lookup(context.Background(), "chat", "de")
	assert.False(t, ok)
}

func TestCached_Concurrent(t *testing.T) {
	release := make(chan struct{})
	src := &stubLookup{fn: func(context.Context, string, string) (bool, error) {
		<-release
		return true, nil
	}}
	c := NewCached(src, 0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := c.Lookup(context.Background(), "silk", "en")
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, src.calls.Load(), int32(10))
	assert.Equal(t, 1, c.Len())
}

func TestCached_CallerCancelDoesNotFailOthers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	src := &stubLookup{fn: func(ctx context.Context, _, _ string) (bool, error) {
		close(started)
		select {
		case <-release:
			return true, ctx.Err()
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}}
	c := NewCached(src, time.Second)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Lookup(first, "silk", "en")
		firstErr <- err
	}()
	<-started

	second := make(chan bool, 1)
	go func() {
		ok, err := c.Lookup(context.Background(), "silk", "en")
		assert.NoError(t, err)
		second <- ok
	}()
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.True(t, <-second)
	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, 1, c.Len())
}

func TestCached_SharedCallTimeout(t *testing.T) {
	src := &stubLookup{fn: func(ctx context.Context, _, _ string) (bool, error) {
		<-ctx.Done()
		return false, ctx.Err()
	}}
	c := NewCached(src, 20*time.Millisecond)

	_, err := c.Lookup(context.Background(), "silk", "en")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, c.Len())
}

func TestNew(t *testing.T) {
	o, err := New(config.DictionaryConfig{Backend: config.BackendWordList, Language: "en", Cache: true})
	require.NoError(t, err)
	assert.True(t, o.IsRealWord(context.Background(), "silk", "en"))
	assert.False(t, o.IsRealWord(context.Background(), "sillk", "en"))

	_, err = New(config.DictionaryConfig{Backend: "nope"})
	assert.ErrorContains(t, err, "unknown backend")

	o, err = New(config.DictionaryConfig{Backend: config.BackendFreeDict, FreeDictURL: "http://127.0.0.1:1", Retries: 1})
	require.NoError(t, err)
	assert.NotNil(t, o)
}
