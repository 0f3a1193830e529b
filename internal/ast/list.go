package ast

import "strings"

// List is an ordered, singly-linked sequence of expressions. It is the
// universal compound form: both code and data.
//
// Shift, Push, and Unshift mutate the receiver and must only be applied to
// owned lists. The evaluator clones a list before consuming it so that a
// shared view is never mutated.
type List struct {
	head *cell
	last *cell
	size int
}

type cell struct {
	value Expression
	next  *cell
}

// NewList returns a list holding the given items in order.
func NewList(items ...Expression) *List {
	l := &List{}
	for _, item := range items {
		l.Push(item)
	}
	return l
}

// Len returns the number of elements.
func (l *List) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool {
	return l.size == 0
}

// Head returns the first element, if any.
func (l *List) Head() (Expression, bool) {
	if l.head == nil {
		return nil, false
	}
	return l.head.value, true
}

// Shift removes and returns the first element. It mutates the receiver.
func (l *List) Shift() (Expression, bool) {
	if l.head == nil {
		return nil, false
	}
	v := l.head.value
	l.head = l.head.next
	if l.head == nil {
		l.last = nil
	}
	l.size--
	return v, true
}

// Push appends a value at the tail. It mutates the receiver.
func (l *List) Push(v Expression) {
	c := &cell{value: v}
	if l.last == nil {
		l.head = c
	} else {
		l.last.next = c
	}
	l.last = c
	l.size++
}

// Unshift prepends a value at the head. It mutates the receiver.
func (l *List) Unshift(v Expression) {
	c := &cell{value: v, next: l.head}
	l.head = c
	if l.last == nil {
		l.last = c
	}
	l.size++
}

// Clone returns a shallow copy: fresh cells, shared element values.
func (l *List) Clone() *List {
	out := &List{}
	for c := l.head; c != nil; c = c.next {
		out.Push(c.value)
	}
	return out
}

// Slice returns the elements as a Go slice.
func (l *List) Slice() []Expression {
	out := make([]Expression, 0, l.size)
	for c := l.head; c != nil; c = c.next {
		out = append(out, c.value)
	}
	return out
}

// Type returns "LIST".
func (l *List) Type() string {
	return "LIST"
}

// String returns the space-separated parenthesized form; the empty list
// prints as "()".
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.value.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
