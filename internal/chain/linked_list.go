package chain

import "github.com/oklog/ulid"

// Chain describes an ordered sequence of values held in singly
// linked nodes. Positions are 0-based and counted from the head.
//
// Implementations are not safe for concurrent use; callers sharing
// a Chain between goroutines must serialise access themselves.
type Chain[T comparable] interface {
	// Append adds the value as the new tail. It never fails.
	Append(value T)
	// Insert places the value so that it ends up at the given index,
	// shifting the following elements back by one. Index may equal
	// Len, in which case this is an Append.
	Insert(value T, index int) error
	// ChangeValue overwrites the value stored at the given index.
	ChangeValue(value T, index int) error
	// Get returns the value stored at the given index.
	Get(index int) (T, error)
	// Front returns the value at the head without removing it.
	Front() (T, error)
	// Back returns the value at the tail without removing it.
	Back() (T, error)
	// PopBack removes and returns the value at the tail.
	PopBack() (T, error)
	// DeleteFront removes and returns the value at the head.
	DeleteFront() (T, error)
	// DeleteValue removes the first node, in head to tail order, whose
	// value equals the given one. The boolean is false when nothing
	// matched, in which case the chain is left untouched.
	DeleteValue(value T) (T, bool, error)
	// DeleteByIndex removes and returns the value at the given index.
	DeleteByIndex(index int) (T, error)
	// Reverse flips the order of the chain in place.
	Reverse() error
	// Render joins the values from head to tail with Separator.
	Render() (string, error)
	// Values returns a copy of the values from head to tail.
	Values() []T
	// Clear drops every node.
	Clear()
	// IsEmpty reports whether the chain holds no values.
	IsEmpty() bool
	// Len returns the number of values in the chain.
	Len() int
	// ID returns the identity the chain stamps on its log events.
	ID() ulid.ULID
}
