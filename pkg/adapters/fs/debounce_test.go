package fs

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/quire/pkg/core"
)

func TestDebouncer_CoalescesPerPath(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)

	var mu sync.Mutex
	fired := map[string]int{}
	fire := func(e core.Event) {
		mu.Lock()
		fired[e.Path]++
		mu.Unlock()
	}

	for i := 0; i < 5; i++ {
		d.add(core.Event{Type: core.EventChanged, Path: "a"}, fire)
	}
	d.add(core.Event{Type: core.EventChanged, Path: "b"}, fire)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired["a"] == 1 && fired["b"] == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, d.stopAndWait(time.Second))
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	d := newDebouncer(time.Hour)
	called := false
	d.add(core.Event{Path: "a"}, func(core.Event) { called = true })

	assert.True(t, d.stopAndWait(time.Second))
	d.add(core.Event{Path: "a"}, func(core.Event) { called = true })
	assert.False(t, called)
}
