package ir

// AtomicLoad builds an atomic load leaf, e.g.
// AtomicLoad("i32.atomic.load", addr).
func AtomicLoad(op string, addr *Node, opts ...MemArgOption) *Node {
	return Load(op, addr, opts...)
}

// AtomicStore builds an atomic store node, e.g.
// AtomicStore("i32.atomic.store", addr, value).
func AtomicStore(op string, addr, value *Node, opts ...MemArgOption) *Node {
	return Store(op, addr, value, opts...)
}

// AtomicRMW builds a read-modify-write atomic node, e.g.
// AtomicRMW("i32.atomic.rmw.add", addr, operand).
func AtomicRMW(op string, addr, operand *Node, opts ...MemArgOption) *Node {
	n := &Node{Type: op, Children: []*Node{addr, operand}, Align: naturalAlign(op)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AtomicCmpxchg builds a compare-exchange atomic node, e.g.
// AtomicCmpxchg("i32.atomic.rmw.cmpxchg", addr, expected, replacement).
func AtomicCmpxchg(op string, addr, expected, replacement *Node, opts ...MemArgOption) *Node {
	n := &Node{Type: op, Children: []*Node{addr, expected, replacement}, Align: naturalAlign(op)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AtomicNotify builds a "memory.atomic.notify" node: address and waiter
// count.
func AtomicNotify(addr, count *Node, opts ...MemArgOption) *Node {
	n := &Node{Type: "memory.atomic.notify", Children: []*Node{addr, count}, Align: naturalAlign("memory.atomic.notify")}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AtomicWait builds a "memory.atomic.wait32" or "memory.atomic.wait64"
// node: address, expected value, timeout in nanoseconds (-1 for none).
func AtomicWait(op string, addr, expected, timeout *Node, opts ...MemArgOption) *Node {
	n := &Node{Type: op, Children: []*Node{addr, expected, timeout}, Align: naturalAlign(op)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AtomicFence builds an "atomic.fence" leaf.
func AtomicFence() *Node {
	return &Node{Type: "atomic.fence"}
}
