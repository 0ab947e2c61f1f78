// Copyright 2023 The treewalk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bst implements an in-memory binary search tree.
//
// bst keeps a mutable set of elements sorted by a comparison function
// supplied at construction time. It supports insertion, deletion,
// membership and extreme-value queries, and the three classical traversal
// orders. Elements are placed purely by insertion order against the
// comparator: the tree performs no balancing, so the shape (and therefore
// the cost of individual operations) degrades to a list under sorted input.
// Callers that need guaranteed logarithmic behavior should reach for a
// balanced structure such as a B-tree or an LLRB tree instead.
//
// The tree holds at most one element per comparator-equality class.
// Inserting an element equal to one already stored replaces the stored
// element in place; it never creates a second node.
//
// Write operations are not safe for concurrent use by multiple goroutines.
// If multiple goroutines access a tree concurrently and at least one of
// them mutates it, access must be synchronized externally.
package bst

import (
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrNoOrdering is returned by New when no comparison function is
	// supplied. A tree cannot exist without one; this is surfaced at
	// construction, never lazily on first use.
	ErrNoOrdering = errors.New("bst: no ordering policy supplied")

	// ErrNilItem is returned by Insert when the element is a nil
	// pointer, interface, map, slice, channel or function. Such a value
	// cannot safely be handed to a comparator.
	ErrNilItem = errors.New("bst: nil item")

	// ErrEmptyTree is returned by Min, Max, DeleteMin and DeleteMax when
	// the tree holds no elements.
	ErrEmptyTree = errors.New("bst: tree is empty")
)

// CompareFunc determines how to order a type 'T'. It must implement a
// strict total order and stay consistent for the lifetime of the tree:
// negative when a sorts before b, positive when a sorts after b, and zero
// when the two are equivalent (the tree holds at most one of them).
type CompareFunc[T any] func(a, b T) int

// Compare returns a default CompareFunc that uses the '<' operator for
// types that support it.
func Compare[T constraints.Ordered]() CompareFunc[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		}
		return 0
	}
}

// New creates an empty tree ordered by cmp.
//
// The passed-in CompareFunc governs every placement and search decision.
// New fails with ErrNoOrdering when cmp is nil.
func New[T any](cmp CompareFunc[T]) (*Tree[T], error) {
	if cmp == nil {
		return nil, errors.Wrap(ErrNoOrdering, "bst.New")
	}
	return &Tree[T]{cmp: cmp}, nil
}

// NewOrdered creates an empty tree using the natural order of T. Unlike
// New it cannot fail: the constraint is the construction-time proof that
// an ordering exists.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	t, _ := New(Compare[T]())
	return t
}

// node is a vertex of the tree. Each node exclusively owns its two child
// subtrees: everything under left sorts before value, everything under
// right sorts after it. Structural edits work by having recursive calls
// return the (possibly new) subtree root, which the caller stores back
// into its child slot, so ownership of a subtree moves exactly once per
// call and no manual lifetime bookkeeping is needed.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// minNode returns the leftmost node under n. n must not be nil.
func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost node under n. n must not be nil.
func maxNode[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// optionalItem carries a value out of a recursive edit that may or may
// not have produced one.
type optionalItem[T any] struct {
	item  T
	valid bool
}

func optional[T any](item T) optionalItem[T] {
	return optionalItem[T]{item: item, valid: true}
}
func empty[T any]() optionalItem[T] {
	return optionalItem[T]{}
}

// Tree is a binary search tree of elements of type T.
//
// The zero Tree is not usable; construct with New or NewOrdered.
type Tree[T any] struct {
	root   *node[T]
	length int
	cmp    CompareFunc[T]
	hooks  []Hook[T]
}

// Insert adds item to the tree. If an element equal to item (under the
// tree's comparator) is already stored, item replaces it in place: no new
// node is created, no position changes, and Len is unchanged. Otherwise
// exactly one node is created and Len grows by one.
//
// Nil pointers, interfaces, maps, slices, channels and functions are
// rejected with ErrNilItem before any mutation.
func (t *Tree[T]) Insert(item T) error {
	if isNil(item) {
		return errors.Wrap(ErrNilItem, "bst.Insert")
	}
	var replaced optionalItem[T]
	t.root = t.insert(t.root, item, &replaced)
	if replaced.valid {
		t.notify(Event[T]{Op: OpReplace, Item: item, Detail: "replaced equal item in place"})
		return nil
	}
	t.length++
	t.notify(Event[T]{Op: OpInsert, Item: item, Detail: "inserted new node"})
	return nil
}

// insert descends by comparison and returns the new root of the edited
// subtree. It creates at most one node per call chain; replaced reports a
// displaced equal element, which is how the caller knows whether the
// length moved. The counter itself is only ever touched at the Tree
// level, once per operation.
func (t *Tree[T]) insert(n *node[T], item T, replaced *optionalItem[T]) *node[T] {
	if n == nil {
		return &node[T]{value: item}
	}
	switch c := t.cmp(item, n.value); {
	case c < 0:
		n.left = t.insert(n.left, item, replaced)
	case c > 0:
		n.right = t.insert(n.right, item, replaced)
	default:
		*replaced = optional(n.value)
		n.value = item
	}
	return n
}

// Delete removes the element equal to item from the tree, returning it
// and true. If no such element exists, it returns (zeroValue, false) and
// the tree is left untouched.
//
// The boolean reports whether this call removed a node. It is independent
// of whether the tree ends up empty: deleting the last element still
// returns true.
func (t *Tree[T]) Delete(item T) (T, bool) {
	var out optionalItem[T]
	t.root = t.delete(t.root, item, &out)
	if !out.valid {
		var zero T
		return zero, false
	}
	t.length--
	t.notify(Event[T]{Op: OpDelete, Item: out.item, Detail: "removed node"})
	return out.item, true
}

// delete removes the node equal to item from the subtree rooted at n and
// returns the subtree's new root. A node with zero or one child is
// spliced out by handing its surviving child (or nil) to the parent. A
// node with two children adopts the value of its in-order successor, then
// deletes that value from the right subtree, which is guaranteed to hit
// the splice case.
func (t *Tree[T]) delete(n *node[T], item T, out *optionalItem[T]) *node[T] {
	if n == nil {
		return nil
	}
	switch c := t.cmp(item, n.value); {
	case c < 0:
		n.left = t.delete(n.left, item, out)
	case c > 0:
		n.right = t.delete(n.right, item, out)
	default:
		if !out.valid {
			*out = optional(n.value)
		}
		switch {
		case n.left == nil:
			return n.right
		case n.right == nil:
			return n.left
		}
		succ := minNode(n.right)
		n.value = succ.value
		// The successor's removal must not clobber the element this
		// call reports as deleted.
		var scratch optionalItem[T]
		n.right = t.delete(n.right, succ.value, &scratch)
	}
	return n
}

// DeleteMin removes the smallest element in the tree and returns it.
// It fails with ErrEmptyTree if the tree holds no elements.
func (t *Tree[T]) DeleteMin() (T, error) {
	v, err := t.Min()
	if err != nil {
		var zero T
		return zero, err
	}
	t.Delete(v)
	return v, nil
}

// DeleteMax removes the largest element in the tree and returns it.
// It fails with ErrEmptyTree if the tree holds no elements.
func (t *Tree[T]) DeleteMax() (T, error) {
	v, err := t.Max()
	if err != nil {
		var zero T
		return zero, err
	}
	t.Delete(v)
	return v, nil
}

// Get looks for the stored element equal to key under the comparator and
// returns it. This matters when the comparator orders by a subset of the
// element (a key field, say): the returned element is the one the tree
// holds, not the probe. Returns (zeroValue, false) when absent.
func (t *Tree[T]) Get(key T) (T, bool) {
	for n := t.root; n != nil; {
		switch c := t.cmp(key, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// Has returns true if an element equal to item is in the tree. Absence is
// an expected outcome, not an error.
func (t *Tree[T]) Has(item T) bool {
	_, ok := t.Get(item)
	return ok
}

// Min returns the smallest element in the tree, or ErrEmptyTree if the
// tree holds no elements.
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, errors.Wrap(ErrEmptyTree, "bst.Min")
	}
	return minNode(t.root).value, nil
}

// Max returns the largest element in the tree, or ErrEmptyTree if the
// tree holds no elements.
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, errors.Wrap(ErrEmptyTree, "bst.Max")
	}
	return maxNode(t.root).value, nil
}

// Len returns the number of elements currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Clear drops every element. The root is dereferenced and the subtree
// left to the garbage collector; since ownership is strictly tree-shaped
// there is nothing else holding the nodes alive. Registered hooks are
// kept but not fired.
func (t *Tree[T]) Clear() {
	t.root, t.length = nil, 0
}

// isNil reports whether item hides a nil pointer, interface, map, slice,
// channel or function behind the type parameter. Value types are never
// nil.
func isNil(item any) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
