package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestAfterFiresOnceWhenDue(t *testing.T) {
	s := New()
	calls := 0
	id := s.After(800*ms, func() { calls++ })

	assert.Equal(t, 0, s.Advance(799*ms))
	assert.True(t, s.Pending(id))

	assert.Equal(t, 1, s.Advance(1*ms))
	assert.Equal(t, 1, calls)
	assert.False(t, s.Pending(id))

	s.Advance(10 * time.Second)
	assert.Equal(t, 1, calls)
}

func TestEveryRearmsFromDueTime(t *testing.T) {
	s := New()
	var at []time.Duration
	s.Every(2000*ms, func() { at = append(at, s.Now()) })

	for i := 0; i < 60; i++ {
		s.Advance(100 * ms)
	}
	assert.Equal(t, []time.Duration{2000 * ms, 4000 * ms, 6000 * ms}, at)
}

func TestOrderingByDueThenInsertion(t *testing.T) {
	s := New()
	var got []string
	s.After(20*ms, func() { got = append(got, "c") })
	s.After(10*ms, func() { got = append(got, "a") })
	s.After(10*ms, func() { got = append(got, "b") })

	s.Advance(50 * ms)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestCancel(t *testing.T) {
	s := New()
	calls := 0
	once := s.After(10*ms, func() { calls++ })
	rep := s.Every(10*ms, func() { calls++ })

	require.True(t, s.Cancel(once))
	require.True(t, s.Cancel(rep))
	assert.False(t, s.Cancel(rep))
	assert.False(t, s.Cancel(EventID(999)))

	s.Advance(time.Second)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, s.Len())
}

func TestRepeatingEventCanCancelItself(t *testing.T) {
	s := New()
	calls := 0
	var id EventID
	id = s.Every(10*ms, func() {
		calls++
		if calls == 2 {
			s.Cancel(id)
		}
	})

	s.Advance(time.Second)
	assert.Equal(t, 2, calls)
	assert.False(t, s.Pending(id))
}

func TestCallbackMayScheduleMore(t *testing.T) {
	s := New()
	var got []time.Duration
	s.After(10*ms, func() {
		s.After(5*ms, func() { got = append(got, s.Now()) })
	})

	s.Advance(10 * ms)
	assert.Empty(t, got)
	s.Advance(5 * ms)
	assert.Equal(t, []time.Duration{15 * ms}, got)
}

func TestClear(t *testing.T) {
	s := New()
	calls := 0
	s.After(ms, func() { calls++ })
	s.Every(ms, func() { calls++ })
	s.Clear()
	s.Advance(time.Second)
	assert.Equal(t, 0, calls)
}
