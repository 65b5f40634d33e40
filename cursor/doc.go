/*
Package cursor provides bidirectional cursors over ordered, possibly infinite, sequences.

A stream of N elements has N+1 slots. Forward moves one slot ahead and returns the element it reached,
Backward returns the element it leaves and moves one slot back. Both fail with ErrEndOfStream at the
respective boundary, so callers either check AtBeginning/AtEnd first or use MoveForwardUntil.

Sources:
  - Just, FromSlice: in-memory collections
  - Interval: [0, stop) with a growable stop
  - Implicit: navigation callbacks
  - FromProvider, FromIterator, FromChannel: forward-only sources, buffered as they are read
  - Empty

Decorators (Filter, Map, Reverse, RemoveFirst, RemoveLast, Concat, FlatMap, Wrap) are defined only in
terms of their sources' navigation, so they compose freely:

	evens := cursor.Just(1, 2, 3, 4, 5).Filter(func(v int) bool { return v%2 == 0 })
	fmt.Println(evens.Reverse().Entries()) // [4 2]
*/
package cursor
