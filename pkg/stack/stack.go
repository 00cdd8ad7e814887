// Package stack implements last-in first-out containers.
//
// Array grows its backing array by doubling, Linked allocates a node per element,
// and Bounded holds integers up to a fixed capacity without ever growing.
package stack
