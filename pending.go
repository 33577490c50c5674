package describe

import "context"

// Pending is an independently awaitable handle to an in-flight operation.
// The operation runs to completion or failure once issued; Wait only
// controls how long the caller is willing to block for the result.
type Pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// PendingDocument resolves to a parsed or fetched Document.
type PendingDocument = Pending[*Document]

// PendingWrite resolves to the path of a written file.
type PendingWrite = Pending[string]

func newPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

// complete records the result and releases all waiters. It must be called
// exactly once.
func (p *Pending[T]) complete(val T, err error) {
	p.val = val
	p.err = err
	close(p.done)
}

// Wait blocks until the operation finishes or ctx is done. An expired ctx
// abandons only the wait, not the underlying operation.
func (p *Pending[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Collect waits on every pending handle in order and returns the resolved
// values. It fails fast: the first error is returned and later handles are
// left to finish on their own.
func Collect[T any](ctx context.Context, pending []*Pending[T]) ([]T, error) {
	results := make([]T, 0, len(pending))
	for _, p := range pending {
		val, err := p.Wait(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}
	return results, nil
}
