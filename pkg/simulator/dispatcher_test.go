package simulator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherRunsInOrder(t *testing.T) {
	d := newDispatcher()
	defer d.close()

	var mu sync.Mutex
	var got []int
	for i := range 100 {
		require.True(t, d.post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}))
	}
	d.sync()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestDispatcherPostFromCallback(t *testing.T) {
	d := newDispatcher()
	defer d.close()

	done := make(chan struct{})
	d.post(func() {
		d.post(func() { close(done) })
	})
	<-done
}

func TestDispatcherCloseDrainsQueue(t *testing.T) {
	d := newDispatcher()

	var mu sync.Mutex
	n := 0
	for range 10 {
		d.post(func() {
			mu.Lock()
			n++
			mu.Unlock()
		})
	}
	d.close()

	mu.Lock()
	assert.Equal(t, 10, n)
	mu.Unlock()

	assert.False(t, d.post(func() {}), "post after close")
	d.sync()
	d.close()
}

func TestDispatcherSyncWaitsForChainedPosts(t *testing.T) {
	d := newDispatcher()
	defer d.close()

	var mu sync.Mutex
	depth := 0
	var step func()
	step = func() {
		mu.Lock()
		depth++
		more := depth < 5
		mu.Unlock()
		if more {
			d.post(step)
		}
	}
	d.post(step)
	d.sync()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, depth)
}
