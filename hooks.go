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

// Op identifies the mutation a hook is being told about.
type Op int

const (
	// OpInsert: a new node was created for the element.
	OpInsert Op = iota
	// OpReplace: an equal element was replaced in place; no structural
	// change, Len unchanged.
	OpReplace
	// OpDelete: a node was removed; Item carries the removed element.
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Event describes one committed mutation.
type Event[T any] struct {
	Op     Op
	Item   T
	Detail string
}

// Hook observes committed mutations. Hooks are notification-only: they
// run synchronously on the mutating goroutine, after the tree has already
// been updated, and nothing they do can fail or undo the operation.
type Hook[T any] func(Event[T])

// Notify registers h to be called after every committed Insert and
// Delete. Hooks fire in registration order. A nil hook is ignored.
func (t *Tree[T]) Notify(h Hook[T]) {
	if h != nil {
		t.hooks = append(t.hooks, h)
	}
}

// notify fans an event out to the registered hooks. A panicking hook is
// recovered so it can neither corrupt tree state nor starve the hooks
// registered after it.
func (t *Tree[T]) notify(ev Event[T]) {
	for _, h := range t.hooks {
		func() {
			defer func() {
				_ = recover()
			}()
			h(ev)
		}()
	}
}
