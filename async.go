package twx

import "context"

// AsyncResponse carries the outcome of a call started with Async.
type AsyncResponse[T any] struct {
	State T
	Err   error
}

// Async runs call on its own goroutine. When it finishes, callback (if not
// nil) is invoked with the outcome, and the same outcome is sent on the
// returned channel, which has capacity one and is then closed.
//
//	ch := twx.Async(ctx, func(ctx context.Context) (*twx.User, error) {
//		return client.CreateBlock(ctx, "123", true)
//	}, nil)
func Async[T any](ctx context.Context, call func(context.Context) (T, error), callback func(AsyncResponse[T])) <-chan AsyncResponse[T] {
	ch := make(chan AsyncResponse[T], 1)
	go func() {
		defer close(ch)
		state, err := call(ctx)
		resp := AsyncResponse[T]{State: state, Err: err}
		if callback != nil {
			callback(resp)
		}
		ch <- resp
	}()
	return ch
}
