package session

import "time"

// Scheduler is the scheduled-callback abstraction the lifecycle manager owns
// its timer ticks through. The returned cancel must stop the callback from
// firing; the manager calls it synchronously on every exit from "running" so
// no tick outlives the state that scheduled it.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules callbacks on the runtime timer heap.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
