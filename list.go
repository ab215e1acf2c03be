package lru

// node lives in the arena of a ringList.
type node[T comparable] struct {
	value T

	// prev and next are arena positions of the neighboring nodes.
	prev int
	next int
}

// ringList is a doubly-linked list flattened onto a slice for storage,
// gaining data locality at the expense of resizeability past steady state.
//
// Nodes are addressed by their position in the arena, links are positions
// rather than pointers. The topology is circular: head's prev is always the
// tail, so tail lookup is O(1). Positions vacated by removal go to a
// freelist and are reused by the next push before the arena grows.
//
// Handles returned by pushFront stay valid until the node is removed, which
// lets the cache pull a node out of the eviction queue and push it back to
// the front on access.
type ringList[T comparable] struct {
	store []node[T]
	free  []int
	head  int
}

func newRingList[T comparable](capacity int) ringList[T] {
	return ringList[T]{
		store: make([]node[T], 0, capacity),
		free:  make([]int, 0, capacity),
		head:  -1,
	}
}

// length is the number of live nodes.
func (l *ringList[T]) length() int {
	return len(l.store) - len(l.free)
}

// pushFront splices value in as the new head and returns its handle.
func (l *ringList[T]) pushFront(value T) int {
	var idx int

	// Reuse a freelisted position or grow the arena.
	if n := len(l.free); n > 0 {
		idx = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		idx = len(l.store)
	}

	n := node[T]{value: value, prev: idx, next: idx}

	if l.head >= 0 {
		n.prev = l.store[l.head].prev
		n.next = l.head

		l.store[n.prev].next = idx
		l.store[n.next].prev = idx
	}

	if idx == len(l.store) {
		l.store = append(l.store, n)
	} else {
		l.store[idx] = n
	}

	l.head = idx

	return idx
}

// popBack detaches the tail node and returns its value.
func (l *ringList[T]) popBack() (T, bool) {
	var zero T

	if l.head < 0 {
		return zero, false
	}

	tail := l.store[l.head].prev
	value := l.store[tail].value

	l.removeNode(tail)

	return value, true
}

// removeNode splices the node's neighbors together and frees its handle.
func (l *ringList[T]) removeNode(idx int) {
	if l.length() == 1 {
		l.head = -1
	} else {
		if idx == l.head {
			l.head = l.store[idx].next
		}

		prev := l.store[idx].prev
		next := l.store[idx].next

		l.store[prev].next = next
		l.store[next].prev = prev
	}

	l.free = append(l.free, idx)
}

// clear drops all nodes keeping the arena allocated for reuse.
func (l *ringList[T]) clear() {
	l.store = l.store[:0]
	l.free = l.free[:0]
	l.head = -1
}
