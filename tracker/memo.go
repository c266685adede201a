package tracker

import (
	"context"
	"sync"
)

// memo is a set-once cell. The first successful init wins; callers arriving
// while init runs wait for it and reuse its value, or give up when their own
// context ends. Failures are not stored, so the next caller tries again.
type memo[T any] struct {
	mu      sync.Mutex
	done    bool
	val     T
	running chan struct{} // closed when the in-flight init returns
}

func (m *memo[T]) get(ctx context.Context, init func(context.Context) (T, error)) (T, error) {
	var zero T
	for {
		m.mu.Lock()
		if m.done {
			v := m.val
			m.mu.Unlock()
			return v, nil
		}
		if m.running == nil {
			m.running = make(chan struct{})
			m.mu.Unlock()
			return m.run(ctx, init)
		}
		running := m.running
		m.mu.Unlock()

		select {
		case <-running:
			// Either a value is stored now or the init failed; look again.
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

func (m *memo[T]) run(ctx context.Context, init func(context.Context) (T, error)) (T, error) {
	var (
		v        T
		err      error
		returned bool
	)
	defer func() {
		m.mu.Lock()
		if returned && err == nil {
			m.val, m.done = v, true
		}
		close(m.running)
		m.running = nil
		m.mu.Unlock()
	}()

	v, err = init(ctx)
	returned = true
	return v, err
}
