// Package concurrency implements a simple channel based resource manager for concurrent operations.
package concurrency

import (
	"sync"
)

// ResourceManager is a struct storing a channel of some given resource (e.g. a scratch
// buffer) meant to be used concurrently, and the first error returned by a [Task].
// At most len(resources) tasks run at the same time.
type ResourceManager[T any] struct {
	wg        sync.WaitGroup
	resources chan T
	mu        sync.Mutex
	err       error
}

// NewResourceManager instantiates a new [ResourceManager].
// The method panics if resources is empty.
func NewResourceManager[T any](resources []T) *ResourceManager[T] {

	if len(resources) == 0 {
		panic("cannot NewResourceManager: resources is empty")
	}

	ch := make(chan T, len(resources))
	for i := range resources {
		ch <- resources[i]
	}
	return &ResourceManager[T]{
		resources: ch,
	}
}

// Task is an abstract template for a function taking as input
// a resource of any kind that can be used concurrently.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] concurrently, blocking until a resource is available.
// If a previous [Task] returned an error, f is skipped.
func (r *ResourceManager[T]) Run(f Task[T]) {
	resource := <-r.resources
	r.wg.Add(1)
	go func() {
		defer func() {
			r.resources <- resource
			r.wg.Done()
		}()

		if r.failed() {
			return
		}

		if err := f(resource); err != nil {
			r.mu.Lock()
			if r.err == nil {
				r.err = err
			}
			r.mu.Unlock()
		}
	}()
}

func (r *ResourceManager[T]) failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err != nil
}

// Wait waits until all concurrent [Task] have finished and returns
// the first encountered error, if any.
func (r *ResourceManager[T]) Wait() (err error) {
	r.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
