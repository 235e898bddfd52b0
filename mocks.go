package streams

import (
	"github.com/stretchr/testify/mock"
)

// MockProducer is a Producer for tests that serves a fixed set of values and
// records how it was consumed.
type MockProducer[T any] struct {
	values     []T
	idx        int
	NextCount  int
	CloseCount int
}

// NewMockProducer creates a MockProducer over the given values.
func NewMockProducer[T any](values []T) *MockProducer[T] {
	return &MockProducer[T]{values: values}
}

// Next implements Producer
func (m *MockProducer[T]) Next() (T, bool) {
	m.NextCount++
	if m.idx >= len(m.values) {
		var zero T
		return zero, false
	}
	v := m.values[m.idx]
	m.idx++
	return v, true
}

// Close implements Producer
func (m *MockProducer[T]) Close() {
	m.CloseCount++
}

// mockCloser wraps a Producer, delegating Next and recording Close calls
// through testify's mock so tests can assert on close propagation.
type mockCloser[T any] struct {
	mock.Mock
	inner Producer[T]
}

func (m *mockCloser[T]) Next() (T, bool) {
	return m.inner.Next()
}

func (m *mockCloser[T]) Close() {
	m.Called()
}
