// Package chain implements the singly linked node chain
// behind the linked stack and the hash map buckets.
//
// Every Node is exclusively owned by its predecessor, or by the head pointer of its owner.
package chain

import "go.llib.dev/adt/pkg/alloc"

type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// Prepend allocates a new Node for v in front of head, and returns it as the new head.
func Prepend[T any](a alloc.Allocator, head *Node[T], v T) (*Node[T], error) {
	n, err := alloc.New[Node[T]](a)
	if err != nil {
		return head, err
	}
	n.Value = v
	n.Next = head
	return n, nil
}

// Find returns the first node matching the predicate, along with its predecessor.
func Find[T any](head *Node[T], match func(T) bool) (prev, node *Node[T]) {
	for node = head; node != nil; prev, node = node, node.Next {
		if match(node.Value) {
			return prev, node
		}
	}
	return nil, nil
}

// Unlink removes node from the chain, where prev is its predecessor or nil when node is the head.
func Unlink[T any](head **Node[T], prev, node *Node[T]) {
	if prev == nil {
		*head = node.Next
	} else {
		prev.Next = node.Next
	}
	node.Next = nil
}

// AppendTo appends the values of the chain to out in chain order.
func AppendTo[T any](out []T, head *Node[T]) []T {
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Value)
	}
	return out
}

// Len counts the nodes of the chain.
func Len[T any](head *Node[T]) int {
	var n int
	for ; head != nil; head = head.Next {
		n++
	}
	return n
}
