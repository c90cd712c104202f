/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

// CountLeadingZeroNibbles counts the leading zero hex nibbles of the digest.
// Whole zero words contribute 8 each; the first nonzero word is scanned from
// its most significant nibble and the scan stops at the first nonzero
// nibble. The result is in [0, 64].
func CountLeadingZeroNibbles(digest *[8]uint32) int {
	count := 0

	for _, word := range digest {
		if word == 0 {
			count += 8
			continue
		}

		for shift := 28; shift >= 0; shift -= 4 {
			if (word>>uint(shift))&0xF != 0 {
				return count
			}
			count++
		}
	}

	return count
}
