package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuliaD2609/DesktopPotato/core"
)

func TestTimerQueue_FiresInDueOrder(t *testing.T) {
	q := NewTimerQueue()
	var order []int

	q.Schedule(0, 3, func() { order = append(order, 3) })
	q.Schedule(0, 1, func() { order = append(order, 1) })
	q.Schedule(0, 2, func() { order = append(order, 2) })
	q.Schedule(0, 1, func() { order = append(order, 11) })

	assert.Equal(t, 0, q.Fire(0, nil))
	assert.Equal(t, 2, q.Fire(1, nil))
	assert.Equal(t, []int{1, 11}, order)

	assert.Equal(t, 2, q.Fire(5, nil))
	assert.Equal(t, []int{1, 11, 2, 3}, order)
	assert.Zero(t, q.Pending())
}

func TestTimerQueue_ZeroDelayWaitsOneTick(t *testing.T) {
	q := NewTimerQueue()
	id := q.Schedule(10, 0, func() {})

	due, ok := q.Due(id)
	require.True(t, ok)
	assert.Equal(t, uint64(11), due)
}

func TestTimerQueue_CancelOwner(t *testing.T) {
	q := NewTimerQueue()
	fired := 0
	q.Schedule(0, 1, func() { fired++ }, core.Entity(1), core.Entity(2))
	q.Schedule(0, 1, func() { fired++ }, core.Entity(2))
	q.Schedule(0, 1, func() { fired++ }, core.Entity(3))

	assert.Equal(t, 2, q.PendingFor(2))
	assert.Equal(t, 2, q.CancelOwner(2))
	assert.Zero(t, q.PendingFor(1))

	q.Fire(1, nil)
	assert.Equal(t, 1, fired)
}

func TestTimerQueue_SkipsDeadOwners(t *testing.T) {
	q := NewTimerQueue()
	fired := false
	q.Schedule(0, 1, func() { fired = true }, core.Entity(7))

	n := q.Fire(1, func(e core.Entity) bool { return e != 7 })
	assert.Zero(t, n)
	assert.False(t, fired)
	assert.Zero(t, q.Pending(), "dead-owner timer is dropped, not retried")
}

func TestTimerQueue_CallbackCancelsSibling(t *testing.T) {
	q := NewTimerQueue()
	var second core.TimerID
	secondFired := false

	q.Schedule(0, 1, func() { q.Cancel(second) })
	second = q.Schedule(0, 1, func() { secondFired = true })

	assert.Equal(t, 1, q.Fire(1, nil))
	assert.False(t, secondFired)
}

func TestTimerQueue_RescheduleFromCallbackWaits(t *testing.T) {
	q := NewTimerQueue()
	count := 0
	var rearm func()
	rearm = func() {
		count++
		q.Schedule(1, 1, rearm)
	}
	q.Schedule(0, 1, rearm)

	q.Fire(1, nil)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, q.Pending())

	q.Fire(2, nil)
	assert.Equal(t, 2, count)
}

func TestTimerQueue_Clear(t *testing.T) {
	q := NewTimerQueue()
	id := q.Schedule(0, 5, func() {})
	q.Clear()

	assert.Zero(t, q.Pending())
	assert.False(t, q.Cancel(id))
}
