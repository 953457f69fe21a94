package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func setupStore(t *testing.T, ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := newMemoryStore(ttl, time.Hour, clock.Now)
	t.Cleanup(func() { store.Close() })
	return store, clock
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store, clock := setupStore(t, time.Minute)
	ctx := context.Background()

	sess := New("s1", clock.Now())
	require.NoError(t, sess.ShowProduct(testProduct(1)))
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Detail.ProductID)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store, clock := setupStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("s1", clock.Now())))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	got.Nav.SetActiveSection("about")

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, again.Nav.ActiveSection)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store, _ := setupStore(t, time.Minute)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store, clock := setupStore(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, New("s1", clock.Now())))

	clock.Advance(2 * time.Minute)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 1, store.Len(), "entry remains until the sweeper runs")

	store.expireSessions()
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_SaveRefreshesTTL(t *testing.T) {
	store, clock := setupStore(t, time.Minute)
	ctx := context.Background()
	sess := New("s1", clock.Now())
	require.NoError(t, store.Save(ctx, sess))

	clock.Advance(50 * time.Second)
	require.NoError(t, store.Save(ctx, sess))
	clock.Advance(50 * time.Second)

	_, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
}

func TestMemoryStore_Delete(t *testing.T) {
	store, clock := setupStore(t, time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, New("s1", clock.Now())))

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStore_CloseStopsSweeper(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewMemoryStore(time.Minute)
	require.NoError(t, store.Close())
}

func TestMemoryStore_CleanupLoopRuns(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := newMemoryStore(time.Minute, 5*time.Millisecond, clock.Now)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), New("s1", clock.Now())))
	clock.Advance(time.Hour)

	require.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 5*time.Millisecond, "expired session was not swept")
}
