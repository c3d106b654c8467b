package glaze

import (
	"sync"
	"sync/atomic"
	"time"
)

// Run drives the application loop. frame is called repeatedly on the
// calling goroutine and returns false to quit; it typically polls native
// events and redraws. When refresh is positive, a background ticker calls
// wake at that interval so animations progress while the event queue is
// idle; wake must be safe to call from another goroutine (for GLFW,
// glfw.PostEmptyEvent).
//
// Run returns after the ticker goroutine, if any, has stopped.
func Run(frame func() bool, wake func(), refresh time.Duration) {
	var (
		quit atomic.Bool
		wg   sync.WaitGroup
	)
	if refresh > 0 && wake != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !quit.Load() {
				time.Sleep(refresh)
				if quit.Load() {
					return
				}
				wake()
			}
		}()
	}

	for frame() {
	}

	quit.Store(true)
	wg.Wait()
}
