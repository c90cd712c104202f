/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"sync/atomic"
)

const (
	// SlotCapacity is the protocol-fixed number of result slots per batch.
	SlotCapacity = 10

	// slotWords is the per-slot layout: the evaluator index followed by the
	// eight final digest words.
	slotWords = 9
)

// ResultBuffer is the shared output of one batch: word 0 is the hit
// counter, followed by SlotCapacity fixed 9-word slots. The counter counts
// every qualifying evaluator; only the first SlotCapacity claims are
// recorded.
type ResultBuffer []uint32

// NewResultBuffer allocates a zeroed buffer with the protocol-fixed
// capacity (91 words).
func NewResultBuffer() ResultBuffer {
	return make(ResultBuffer, 1+slotWords*SlotCapacity)
}

// Reset zeroes the buffer. The host must reset between batches.
func (rb ResultBuffer) Reset() {
	for i := range rb {
		rb[i] = 0
	}
}

// HitCount returns the total number of qualifying evaluators recorded by
// the counter, which may exceed the slot capacity.
func (rb ResultBuffer) HitCount() uint32 {
	return atomic.LoadUint32(&rb[0])
}

// Slot returns the evaluator index and digest stored in slot i. Only slots
// below min(HitCount, SlotCapacity) hold data.
func (rb ResultBuffer) Slot(i int) (evaluatorIndex uint32, digest [8]uint32) {
	base := 1 + i*slotWords
	copy(digest[:], rb[base+1:base+slotWords])
	return rb[base], digest
}

func (rb ResultBuffer) capacity() int {
	return (len(rb) - 1) / slotWords
}

// record claims a slot with a fetch-and-add on the counter and writes the
// hit if the claimed index is within capacity. The unique pre-increment
// value makes the slot region race free without locks; excess hits only
// bump the counter.
func (rb ResultBuffer) record(evaluatorIndex uint32, digest *[8]uint32) {
	slot := atomic.AddUint32(&rb[0], 1) - 1
	if int(slot) >= rb.capacity() {
		return
	}

	base := 1 + int(slot)*slotWords
	rb[base] = evaluatorIndex
	copy(rb[base+1:base+slotWords], digest[:])
}
