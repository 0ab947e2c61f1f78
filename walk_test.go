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

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(t *Tree[int], order Order) []int {
	out := []int{}
	t.Walk(order, func(item int) bool {
		out = append(out, item)
		return true
	})
	return out
}

// The tree built from 5, 3, 8, 1, 4:
//
//	    5
//	   / \
//	  3   8
//	 / \
//	1   4
func scenarioTree() *Tree[int] {
	tr := NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		tr.Insert(v)
	}
	return tr
}

func TestWalkOrders(t *testing.T) {
	tr := scenarioTree()
	cases := []struct {
		name  string
		order Order
		want  []int
	}{
		{"inorder", InOrder, []int{1, 3, 4, 5, 8}},
		{"preorder", PreOrder, []int{5, 3, 1, 4, 8}},
		{"postorder", PostOrder, []int{1, 4, 3, 8, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, collect(tr, tc.order)); diff != "" {
				t.Errorf("walk mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkEmpty(t *testing.T) {
	tr := NewOrdered[int]()
	for _, order := range []Order{InOrder, PreOrder, PostOrder} {
		if got := collect(tr, order); len(got) != 0 {
			t.Fatalf("walk of empty tree produced %v", got)
		}
	}
}

func TestWalkRestartable(t *testing.T) {
	tr := scenarioTree()
	first := collect(tr, InOrder)
	second := collect(tr, InOrder)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second walk differs (-first +second):\n%s", diff)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	tr := scenarioTree()
	var got []int
	tr.Walk(InOrder, func(item int) bool {
		got = append(got, item)
		return item < 4
	})
	if diff := cmp.Diff([]int{1, 3, 4}, got); diff != "" {
		t.Errorf("early stop (-want +got):\n%s", diff)
	}
	got = got[:0]
	tr.Walk(PreOrder, func(item int) bool {
		got = append(got, item)
		return len(got) < 2
	})
	if diff := cmp.Diff([]int{5, 3}, got); diff != "" {
		t.Errorf("early stop (-want +got):\n%s", diff)
	}
}

func TestWalkDoesNotMutate(t *testing.T) {
	tr := scenarioTree()
	before := collect(tr, InOrder)
	for _, order := range []Order{InOrder, PreOrder, PostOrder} {
		collect(tr, order)
	}
	if tr.Len() != 5 {
		t.Fatalf("len changed by traversal: %v", tr.Len())
	}
	if diff := cmp.Diff(before, collect(tr, InOrder)); diff != "" {
		t.Errorf("structure changed by traversal (-before +after):\n%s", diff)
	}
}

// In-order traversal must follow the comparator, not the type's natural
// order: with a reversed comparator, ascending iteration yields the
// numerically largest element first.
func TestWalkFollowsComparator(t *testing.T) {
	tr, err := New(func(a, b int) int { return b - a })
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{2, 5, 1, 4, 3} {
		tr.Insert(v)
	}
	if diff := cmp.Diff([]int{5, 4, 3, 2, 1}, collect(tr, InOrder)); diff != "" {
		t.Errorf("reversed comparator (-want +got):\n%s", diff)
	}
}

// Ascending in-order output equals the sorted insert sequence for any
// permutation, the defining property of the structure.
func TestInOrderSorted(t *testing.T) {
	tr := NewOrdered[int]()
	ins := []int{9, 2, 14, 0, 7, 11, 3, 20, 5}
	for _, v := range ins {
		tr.Insert(v)
	}
	want := append([]int(nil), ins...)
	sort.Ints(want)
	if diff := cmp.Diff(want, collect(tr, InOrder)); diff != "" {
		t.Errorf("inorder not sorted (-want +got):\n%s", diff)
	}
}
