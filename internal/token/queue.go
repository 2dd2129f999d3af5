package token

import "errors"

// queueSize bounds the number of tokens a single word may expand into.
const queueSize = 8

// ErrQueueOverflow is returned when a word expands into more pending tokens
// than the queue can hold. This indicates a recognizer misconfiguration and
// aborts the run.
var ErrQueueOverflow = errors.New("token: pending queue overflow")

// queue is a LIFO holding area for tokens produced ahead of their position
// in the stream. Pushed tokens are consumed before any further input is
// read, most recent first.
type queue struct {
	items [queueSize]*Token
	n     int
}

func (q *queue) push(t *Token) error {
	if q.n >= queueSize {
		return ErrQueueOverflow
	}
	q.items[q.n] = t
	q.n++
	return nil
}

// pop returns the most recently pushed token, or nil if the queue is empty.
func (q *queue) pop() *Token {
	if q.n == 0 {
		return nil
	}
	q.n--
	return q.items[q.n]
}
