/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"fmt"
	"strings"
)

// Solution is one qualifying candidate decoded from a result buffer slot.
type Solution struct {
	K              uint64
	Diff           uint32
	EvaluatorIndex uint32
	Digest         [8]uint32
}

// Preimage returns the hashed message bytes: the marker followed by the
// significant bytes of the cube nonce.
func (s *Solution) Preimage() []byte {
	nonce := NewCubeNonce(s.K, s.Diff)
	return append([]byte(nonceMarker), nonce.Bytes(nonce.SignificantLength())...)
}

// DigestHex returns the final digest as 64 hex characters, most-significant
// word first.
func (s *Solution) DigestHex() string {
	var sb strings.Builder
	for _, word := range s.Digest {
		fmt.Fprintf(&sb, "%08x", word)
	}

	return sb.String()
}

// BatchResult is the host-side view of one finished batch.
type BatchResult struct {
	StartK      uint64
	BatchSize   uint64
	Diff        uint32
	TargetZeros uint32

	// HitCount is the exact number of qualifying candidates, which may
	// exceed len(Solutions).
	HitCount  uint32
	Solutions []*Solution
}
