// Package limiter caps the number of render requests processed at once.
package limiter

import (
	"context"
	"errors"
)

var ErrTimeout = errors.New("timeout exceeded")

// SimpleLimiter is a counting semaphore. A nil limiter admits everything.
type SimpleLimiter chan struct{}

// Enter claims one of the free slots or blocks until there is one.
func (l SimpleLimiter) Enter(ctx context.Context) error {
	if l == nil {
		return nil
	}

	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ErrTimeout
	}
}

// Leave frees a slot in the limiter.
func (l SimpleLimiter) Leave() {
	if l != nil {
		<-l
	}
}

func (l SimpleLimiter) Capacity() int {
	return cap(l)
}

func (l SimpleLimiter) Use() int {
	return len(l)
}

func NewSimpleLimiter(l int) SimpleLimiter {
	if l <= 0 {
		return nil
	}
	return make(chan struct{}, l)
}
