// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.End()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"time"
)

// FpsLimiter will trigger at the requested number of frames per second. It is
// probably only any good if the base performance of the machine is well above
// the required rate.
type FpsLimiter struct {
	secondsPerFrame time.Duration

	tick  chan bool
	limit chan time.Duration
	quit  chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond float64) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: frames per second must be positive (%f)", framesPerSecond)
	}

	lim := &FpsLimiter{
		tick:  make(chan bool),
		limit: make(chan time.Duration, 1),
		quit:  make(chan bool),
	}
	lim.secondsPerFrame = perFrame(framesPerSecond)

	// run ticker concurrently. the sleep period is adjusted so that drift in
	// the timing of the sleep is corrected over time
	go func() {
		spf := lim.secondsPerFrame
		adjusted := spf
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case spf = <-lim.limit:
				adjusted = spf
				t = time.Now()
				continue
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - spf
			adjusted = max(0, min(adjusted, 2*spf))
			t = nt
		}
	}()

	return lim, nil
}

func perFrame(framesPerSecond float64) time.Duration {
	return time.Duration(float64(time.Second) / framesPerSecond)
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	if framesPerSecond <= 0 {
		return
	}
	lim.secondsPerFrame = perFrame(framesPerSecond)

	// replace any pending limit that has not been picked up by the ticker
	select {
	case <-lim.limit:
	default:
	}
	lim.limit <- lim.secondsPerFrame
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// End the limiter. Wait() must not be called after End().
func (lim *FpsLimiter) End() {
	close(lim.quit)
}
