package config_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docunits/internal/config"
	"docunits/internal/shared/testutil"
)

func TestCache_ReturnsSameStore(t *testing.T) {
	dir := testutil.WriteConfigDir(t)
	cache := config.NewCache()

	first, err := cache.Store(dir)
	require.NoError(t, err)
	second, err := cache.Store(dir)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCache_ConcurrentFirstLoad(t *testing.T) {
	dir := testutil.WriteConfigDir(t)
	cache := config.NewCache()

	const workers = 16
	stores := make([]*config.Store, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := cache.Store(dir)
			assert.NoError(t, err)
			stores[i] = s
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, stores[0], stores[i])
	}
}

func TestCache_Reload(t *testing.T) {
	dir := testutil.WriteConfigDir(t)
	cache := config.NewCache()

	first, err := cache.Store(dir)
	require.NoError(t, err)

	reloaded, err := cache.Reload(dir)
	require.NoError(t, err)
	assert.NotSame(t, first, reloaded)

	again, err := cache.Store(dir)
	require.NoError(t, err)
	assert.Same(t, reloaded, again)
}

func TestCache_LoadErrorNotCached(t *testing.T) {
	dir := t.TempDir()
	cache := config.NewCache()

	_, err := cache.Store(dir)
	require.Error(t, err)
	var missing *config.MissingTableError
	assert.True(t, errors.As(err, &missing))

	// A failed load leaves nothing behind; the next call tries again.
	_, err = cache.Store(dir)
	require.Error(t, err)
}
