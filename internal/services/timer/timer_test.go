package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRepeatedTimer_Fires(t *testing.T) {
	var count int64
	rt := NewRepeatedTimer(10*time.Millisecond, func() {
		atomic.AddInt64(&count, 1)
	})
	defer rt.Stop()

	time.Sleep(100 * time.Millisecond)
	if atomic.LoadInt64(&count) == 0 {
		t.Error("timer never fired")
	}
}

func TestRepeatedTimer_Stop(t *testing.T) {
	var count int64
	rt := NewRepeatedTimer(10*time.Millisecond, func() {
		atomic.AddInt64(&count, 1)
	})

	time.Sleep(50 * time.Millisecond)
	rt.Stop()
	after := atomic.LoadInt64(&count)

	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt64(&count) != after {
		t.Error("timer kept firing after Stop")
	}
}
