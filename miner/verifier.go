/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package miner

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/cubeteam/go-cube/common"
	"github.com/cubeteam/go-cube/pow"
)

const verifyCacheSize = 1024

// verifier re-derives candidate digests to check solutions before they are
// accepted. Recomputed digests are cached so re-submitted candidates are
// cheap.
type verifier struct {
	diff        uint32
	targetZeros uint32
	cache       *lru.Cache // k to final digest
}

func newVerifier(diff uint32, targetZeros uint32) *verifier {
	return &verifier{
		diff:        diff,
		targetZeros: targetZeros,
		cache:       common.MustNewCache(verifyCacheSize),
	}
}

// digestOf recomputes or recalls the final digest for candidate k.
func (v *verifier) digestOf(k uint64) [8]uint32 {
	if cached, found := v.cache.Get(k); found {
		return cached.([8]uint32)
	}

	digest, _ := pow.Evaluate(k, v.diff)
	v.cache.Add(k, digest)

	return digest
}

// Verify checks that the solution's digest matches an independent
// recomputation and meets the difficulty threshold.
func (v *verifier) Verify(sol *pow.Solution) bool {
	if sol.Diff != v.diff {
		return false
	}

	digest := v.digestOf(sol.K)
	if digest != sol.Digest {
		return false
	}

	return uint32(pow.CountLeadingZeroNibbles(&digest)) >= v.targetZeros
}
