package queue

// Layout exposes the circular region for white-box assertions.
func (q *Array[T]) Layout() (head int, slots []T) { return q.r.head, q.r.buf.Slots }

func (d *Deque[T]) Layout() (head int, slots []T) { return d.r.head, d.r.buf.Slots }
