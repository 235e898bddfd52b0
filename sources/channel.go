package sources

import (
	"github.com/elastiflow/streams"
)

type channelSource[T any] struct {
	receiver <-chan T
	done     bool
}

// FromChannel creates an Unknown-length stream that pulls one value per
// receive until the channel is closed. The sender owns the channel; closing
// the stream stops pulling but does not drain or close the channel.
func FromChannel[T any](rec <-chan T) *streams.Stream[T] {
	return streams.New[T](&channelSource[T]{receiver: rec}, streams.LenUnknown)
}

// Next implements streams.Producer
func (c *channelSource[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := <-c.receiver
	if !ok {
		c.done = true
	}
	return v, ok
}

// Close implements streams.Producer
func (c *channelSource[T]) Close() {
	c.done = true
}
