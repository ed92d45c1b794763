package session

import (
	"context"
	"os"
)

// Watch calls onSignal once if a signal arrives on sig before ctx ends.
// onSignal runs on the watcher goroutine, outside the session loop, so it
// must not touch the Session. The returned stop releases the watcher and
// waits for it to exit.
func Watch(ctx context.Context, sig <-chan os.Signal, onSignal func(os.Signal)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		select {
		case s := <-sig:
			onSignal(s)
		case <-ctx.Done():
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
