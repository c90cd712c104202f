/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubeteam/go-cube/common/hexutil"
	"github.com/cubeteam/go-cube/pow"
)

var (
	verifyK      uint64
	verifyDiff   uint32
	verifyTarget uint32
)

// verifyCmd recomputes one candidate and reports whether it qualifies
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "recompute a candidate and check it against the difficulty",
	Long: `usage example:
		miner verify -k 12345 -d 630 -t 13
		recompute candidate k and report its digest and zero count.`,

	Run: func(cmd *cobra.Command, args []string) {
		digest, zeros := pow.Evaluate(verifyK, verifyDiff)

		sol := &pow.Solution{K: verifyK, Diff: verifyDiff, Digest: digest}
		fmt.Printf("k=%d diff=%d\n", verifyK, verifyDiff)
		fmt.Printf("Data: %s\n", hexutil.BytesToHex(sol.Preimage()))
		fmt.Printf("Hash: %s\n", sol.DigestHex())
		fmt.Printf("Leading zero nibbles: %d (target %d)\n", zeros, verifyTarget)

		if uint32(zeros) >= verifyTarget {
			fmt.Println("Candidate qualifies")
		} else {
			fmt.Println("Candidate does not qualify")
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Uint64VarP(&verifyK, "k", "k", 0, "candidate identity k")
	verifyCmd.Flags().Uint32VarP(&verifyDiff, "diff", "d", 630, "cube difficulty multiplier")
	verifyCmd.Flags().Uint32VarP(&verifyTarget, "target", "t", 13, "required leading zero nibbles")
}
