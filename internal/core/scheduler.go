package core

// FrameID identifies a pending frame callback.
type FrameID uint64

// Scheduler runs callbacks before the next repaint.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler driven by the host: each call to Flush runs the
// callbacks that were pending when it started. Callbacks requested during a
// flush run on the following one.
type FrameQueue struct {
	next    FrameID
	pending []frameRequest
}

type frameRequest struct {
	id FrameID
	fn func()
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

// RequestFrame queues fn for the next flush.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	if fn == nil {
		return q.next
	}
	q.pending = append(q.pending, frameRequest{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending callback. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, req := range q.pending {
		if req.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Flush runs the queued callbacks in request order and reports how many ran.
func (q *FrameQueue) Flush() int {
	if len(q.pending) == 0 {
		return 0
	}
	batch := q.pending
	q.pending = nil
	for _, req := range batch {
		req.fn()
	}
	return len(batch)
}
