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

package bst

// Order selects a traversal order for Walk.
type Order int

const (
	// InOrder visits left subtree, node, right subtree: elements arrive
	// in ascending comparator order. This is the tree's default
	// iteration order.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
)

// ItemIterator allows callers of Walk and the Ascend*/Descend* family to
// iterate over portions of the tree. Elements are produced one at a time,
// on demand; when this function returns false, iteration stops and the
// associated call returns immediately. The iterator must not mutate the
// tree.
type ItemIterator[T any] func(item T) bool

// Walk calls the iterator for every element in the tree in the given
// order, until the iterator returns false. Walking an empty tree calls
// nothing. Walk never mutates the tree and may be restarted any number of
// times.
func (t *Tree[T]) Walk(order Order, iterator ItemIterator[T]) {
	switch order {
	case PreOrder:
		t.root.walkPre(iterator)
	case PostOrder:
		t.root.walkPost(iterator)
	default:
		t.root.walkIn(iterator)
	}
}

func (n *node[T]) walkIn(iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if !n.left.walkIn(iter) {
		return false
	}
	if !iter(n.value) {
		return false
	}
	return n.right.walkIn(iter)
}

func (n *node[T]) walkPre(iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if !iter(n.value) {
		return false
	}
	if !n.left.walkPre(iter) {
		return false
	}
	return n.right.walkPre(iter)
}

func (n *node[T]) walkPost(iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if !n.left.walkPost(iter) {
		return false
	}
	if !n.right.walkPost(iter) {
		return false
	}
	return iter(n.value)
}

// ascend walks the subtree in ascending order within [start, stop),
// pruning subtrees the window cannot reach. Returning false aborts the
// whole walk: once a value at or past stop is seen, everything later is
// too.
func (t *Tree[T]) ascend(n *node[T], start, stop optionalItem[T], iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if start.valid && t.cmp(n.value, start.item) < 0 {
		// n and its left subtree sit below the window.
		return t.ascend(n.right, start, stop, iter)
	}
	if !t.ascend(n.left, start, stop, iter) {
		return false
	}
	if stop.valid && t.cmp(n.value, stop.item) >= 0 {
		return false
	}
	if !iter(n.value) {
		return false
	}
	return t.ascend(n.right, start, stop, iter)
}

// descend is ascend's mirror: descending order within [start, stop),
// where start is the inclusive upper bound and stop the exclusive lower
// bound.
func (t *Tree[T]) descend(n *node[T], start, stop optionalItem[T], iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if start.valid && t.cmp(n.value, start.item) > 0 {
		// n and its right subtree sit above the window.
		return t.descend(n.left, start, stop, iter)
	}
	if !t.descend(n.right, start, stop, iter) {
		return false
	}
	if stop.valid && t.cmp(n.value, stop.item) <= 0 {
		return false
	}
	if !iter(n.value) {
		return false
	}
	return t.descend(n.left, start, stop, iter)
}

// Ascend calls the iterator for every element in the tree within the
// range [first, last], until the iterator returns false. It is equivalent
// to Walk(InOrder, iterator).
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	t.ascend(t.root, empty[T](), empty[T](), iterator)
}

// AscendRange calls the iterator for every element in the tree within the
// range [greaterOrEqual, lessThan), until the iterator returns false.
func (t *Tree[T]) AscendRange(greaterOrEqual, lessThan T, iterator ItemIterator[T]) {
	t.ascend(t.root, optional(greaterOrEqual), optional(lessThan), iterator)
}

// AscendLessThan calls the iterator for every element in the tree within
// the range [first, pivot), until the iterator returns false.
func (t *Tree[T]) AscendLessThan(pivot T, iterator ItemIterator[T]) {
	t.ascend(t.root, empty[T](), optional(pivot), iterator)
}

// AscendGreaterOrEqual calls the iterator for every element in the tree
// within the range [pivot, last], until the iterator returns false.
func (t *Tree[T]) AscendGreaterOrEqual(pivot T, iterator ItemIterator[T]) {
	t.ascend(t.root, optional(pivot), empty[T](), iterator)
}

// Descend calls the iterator for every element in the tree within the
// range [last, first], until the iterator returns false.
func (t *Tree[T]) Descend(iterator ItemIterator[T]) {
	t.descend(t.root, empty[T](), empty[T](), iterator)
}

// DescendRange calls the iterator for every element in the tree within
// the range [lessOrEqual, greaterThan), until the iterator returns false.
func (t *Tree[T]) DescendRange(lessOrEqual, greaterThan T, iterator ItemIterator[T]) {
	t.descend(t.root, optional(lessOrEqual), optional(greaterThan), iterator)
}

// DescendLessOrEqual calls the iterator for every element in the tree
// within the range [pivot, first], until the iterator returns false.
func (t *Tree[T]) DescendLessOrEqual(pivot T, iterator ItemIterator[T]) {
	t.descend(t.root, optional(pivot), empty[T](), iterator)
}

// DescendGreaterThan calls the iterator for every element in the tree
// within the range [last, pivot), until the iterator returns false.
func (t *Tree[T]) DescendGreaterThan(pivot T, iterator ItemIterator[T]) {
	t.descend(t.root, empty[T](), optional(pivot), iterator)
}
