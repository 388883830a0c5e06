package game

import "time"

type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
	}
}

// Update advances the timer by one frame of dt seconds
func (t *Timer) Update(dt float64) {
	t.currentTime += time.Duration(dt * float64(time.Second))
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
