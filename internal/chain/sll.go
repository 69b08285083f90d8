package chain

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid"
	"github.com/rs/zerolog"
)

// Separator is written between two consecutive values by Render.
const Separator = " -> "

// node is the single entity of the singly linked list.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// Assert that *SinglyLinkedList implements Chain.
var _ Chain[int] = (*SinglyLinkedList[int])(nil)

// SinglyLinkedList implements Chain.
//
// Every node links to its successor only. The tail pointer makes
// Append O(1), but removing the tail still walks from the head since
// there are no back links.
//
// The list always satisfies:
// * count is 0 exactly when head and tail are both nil.
// * tail is the last node reachable from head and tail.next is nil.
type SinglyLinkedList[T comparable] struct {
	id    ulid.ULID
	log   zerolog.Logger
	head  *node[T]
	tail  *node[T]
	count int
}

// NewSinglyLinkedList returns a new instance of an empty SinglyLinkedList.
// Every event written to log carries the identity of the list.
func NewSinglyLinkedList[T comparable](log zerolog.Logger) *SinglyLinkedList[T] {
	id := newID()
	return &SinglyLinkedList[T]{
		id:  id,
		log: log.With().Str("chain", id.String()).Logger(),
	}
}

// ID returns the identity of the list.
func (sll *SinglyLinkedList[T]) ID() ulid.ULID {
	return sll.id
}

// Len returns the number of values in the list.
func (sll *SinglyLinkedList[T]) Len() int {
	return sll.count
}

// IsEmpty reports whether the list holds no values.
func (sll *SinglyLinkedList[T]) IsEmpty() bool {
	return sll.count == 0
}

// Append inserts the value after the current tail.
func (sll *SinglyLinkedList[T]) Append(value T) {
	newNode := &node[T]{value: value}
	if sll.head == nil {
		// The list was empty, so the new node is the head too.
		sll.head = newNode
		sll.tail = newNode
	} else {
		sll.tail.next = newNode
		sll.tail = newNode
	}
	sll.count++
}

// Insert inserts the value so that it becomes the element at index.
// Valid indices are 0 through Len inclusive.
func (sll *SinglyLinkedList[T]) Insert(value T, index int) error {
	if index < 0 || index > sll.count {
		sll.
			log.
			Debug().
			Int("index", index).
			Int("count", sll.count).
			Msg("can't insert, invalid index")
		return ErrInvalidIndex
	}

	newNode := &node[T]{value: value}
	if index == 0 {
		newNode.next = sll.head
		sll.head = newNode
		if sll.tail == nil {
			sll.tail = newNode
		}
	} else {
		prev := sll.nodeAt(index - 1)
		newNode.next = prev.next
		prev.next = newNode
		if newNode.next == nil {
			sll.tail = newNode
		}
	}
	sll.count++
	return nil
}

// ChangeValue overwrites the value held at index.
func (sll *SinglyLinkedList[T]) ChangeValue(value T, index int) error {
	if err := sll.checkIndex("change value", index); err != nil {
		return err
	}
	sll.nodeAt(index).value = value
	return nil
}

// Get returns the value held at index.
func (sll *SinglyLinkedList[T]) Get(index int) (T, error) {
	if err := sll.checkIndex("get", index); err != nil {
		var zero T
		return zero, err
	}
	return sll.nodeAt(index).value, nil
}

// Front returns the value held by the head.
func (sll *SinglyLinkedList[T]) Front() (T, error) {
	if sll.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	return sll.head.value, nil
}

// Back returns the value held by the tail.
func (sll *SinglyLinkedList[T]) Back() (T, error) {
	if sll.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	return sll.tail.value, nil
}

// PopBack removes the tail and returns its value.
//
// The new tail is found by walking from the head, so this is O(n).
func (sll *SinglyLinkedList[T]) PopBack() (T, error) {
	if sll.count == 0 {
		sll.log.Debug().Msg("can't pop back, list is empty")
		var zero T
		return zero, ErrEmptyList
	}

	popped := sll.tail
	if sll.count == 1 {
		sll.head = nil
		sll.tail = nil
	} else {
		current := sll.head
		for current.next != sll.tail {
			current = current.next
		}
		current.next = nil
		sll.tail = current
	}
	sll.count--
	sll.logIfEmptied()
	return popped.value, nil
}

// DeleteFront removes the head and returns its value.
func (sll *SinglyLinkedList[T]) DeleteFront() (T, error) {
	if sll.count == 0 {
		sll.log.Debug().Msg("can't delete front, list is empty")
		var zero T
		return zero, ErrEmptyList
	}

	removed := sll.head
	sll.head = removed.next
	removed.next = nil
	if sll.head == nil {
		sll.tail = nil
	}
	sll.count--
	sll.logIfEmptied()
	return removed.value, nil
}

// DeleteValue removes the first node holding value. The head and the
// tail are checked before anything is traversed.
//
// The returned boolean is false when no node matched.
func (sll *SinglyLinkedList[T]) DeleteValue(value T) (T, bool, error) {
	var zero T
	if sll.count == 0 {
		sll.log.Debug().Msg("can't delete value, list is empty")
		return zero, false, ErrEmptyList
	}

	if sll.head.value == value {
		removed, err := sll.DeleteFront()
		return removed, err == nil, err
	}
	if sll.tail.value == value {
		removed, err := sll.PopBack()
		return removed, err == nil, err
	}

	prev := sll.head
	for current := sll.head.next; current != nil; prev, current = current, current.next {
		if current.value == value {
			return sll.unlinkAfter(prev).value, true, nil
		}
	}

	sll.
		log.
		Debug().
		Int("count", sll.count).
		Msg("value not found")
	return zero, false, nil
}

// DeleteByIndex removes the node at index and returns its value,
// whether it was the head, the tail or an interior node.
func (sll *SinglyLinkedList[T]) DeleteByIndex(index int) (T, error) {
	if err := sll.checkIndex("delete", index); err != nil {
		var zero T
		return zero, err
	}

	switch index {
	case 0:
		return sll.DeleteFront()
	case sll.count - 1:
		return sll.PopBack()
	}
	return sll.unlinkAfter(sll.nodeAt(index - 1)).value, nil
}

// Reverse re-points every link to its predecessor in a single pass
// and swaps the head and the tail.
func (sll *SinglyLinkedList[T]) Reverse() error {
	if sll.count == 0 {
		sll.log.Debug().Msg("can't reverse, list is empty")
		return ErrEmptyList
	}
	if sll.count == 1 {
		return nil
	}

	var prev *node[T]
	current := sll.head
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	sll.head, sll.tail = sll.tail, sll.head

	sll.
		log.
		Debug().
		Int("count", sll.count).
		Msg("reversed")
	return nil
}

// Render returns the values from head to tail, formatted with
// fmt.Sprint and joined by Separator.
func (sll *SinglyLinkedList[T]) Render() (string, error) {
	if sll.count == 0 {
		return "", ErrEmptyList
	}

	var b strings.Builder
	for current := sll.head; current != nil; current = current.next {
		if current != sll.head {
			b.WriteString(Separator)
		}
		fmt.Fprint(&b, current.value)
	}
	return b.String(), nil
}

// Values returns a copy of the values from head to tail.
func (sll *SinglyLinkedList[T]) Values() []T {
	values := make([]T, 0, sll.count)
	for current := sll.head; current != nil; current = current.next {
		values = append(values, current.value)
	}
	return values
}

// Clear drops every node. Links are cut one by one so that a node
// still referenced elsewhere doesn't keep the rest of the chain alive.
func (sll *SinglyLinkedList[T]) Clear() {
	for sll.head != nil {
		current := sll.head
		sll.head = current.next
		current.next = nil
	}
	sll.tail = nil
	sll.count = 0
}

// nodeAt walks index links from the head. The caller guarantees
// 0 <= index < count.
func (sll *SinglyLinkedList[T]) nodeAt(index int) *node[T] {
	current := sll.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	return current
}

// unlinkAfter removes the successor of prev, which must exist.
func (sll *SinglyLinkedList[T]) unlinkAfter(prev *node[T]) *node[T] {
	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	if removed == sll.tail {
		sll.tail = prev
	}
	sll.count--
	return removed
}

// checkIndex validates index for the operations that need an existing
// element. An empty list is reported before a bad index.
func (sll *SinglyLinkedList[T]) checkIndex(op string, index int) error {
	if sll.count == 0 {
		sll.
			log.
			Debug().
			Int("index", index).
			Msg("can't " + op + ", list is empty")
		return ErrEmptyList
	}
	if index < 0 || index >= sll.count {
		sll.
			log.
			Debug().
			Int("index", index).
			Int("count", sll.count).
			Msg("can't " + op + ", invalid index")
		return ErrInvalidIndex
	}
	return nil
}

func (sll *SinglyLinkedList[T]) logIfEmptied() {
	if sll.count == 0 {
		sll.log.Debug().Msg("emptied")
	}
}
