package generator

import "context"

type outcome[T any] struct {
	value T
	err   error
}

// launch runs fn in its own goroutine. The channel is buffered so the
// goroutine can always deliver and exit, even when nobody is listening.
func launch[T any](fn func() (T, error)) <-chan outcome[T] {
	ch := make(chan outcome[T], 1)
	go func() {
		v, err := fn()
		ch <- outcome[T]{value: v, err: err}
	}()
	return ch
}

// Join runs fa and fb concurrently and waits for both. The first error wins:
// Join returns it immediately and the other call keeps running in the
// background with its outcome dropped. It is never cancelled. If ctx ends
// first, Join returns ctx.Err() under the same rules.
func Join[A, B any](ctx context.Context, fa func() (A, error), fb func() (B, error)) (A, B, error) {
	var (
		a    A
		b    B
		za   A
		zb   B
		aCh  = launch(fa)
		bCh  = launch(fb)
		done = ctx.Done()
	)

	for pending := 2; pending > 0; pending-- {
		select {
		case r := <-aCh:
			if r.err != nil {
				return za, zb, r.err
			}
			a = r.value
			aCh = nil
		case r := <-bCh:
			if r.err != nil {
				return za, zb, r.err
			}
			b = r.value
			bCh = nil
		case <-done:
			return za, zb, ctx.Err()
		}
	}

	return a, b, nil
}
