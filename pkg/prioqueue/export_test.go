package prioqueue

import "fmt"

// Layout renders the heap array from index 1 as priority:value#sequence.
func (h *Heap[P, T]) Layout() []string {
	out := make([]string, 0, h.last)
	for _, n := range h.buf.Slots[1 : h.last+1] {
		out = append(out, fmt.Sprintf("%v:%v#%d", n.priority, n.value, n.seq))
	}
	return out
}
