/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cubeteam/go-cube/common"
	"github.com/cubeteam/go-cube/common/hexutil"
	"github.com/cubeteam/go-cube/database/leveldb"
	"github.com/cubeteam/go-cube/miner"
	"github.com/cubeteam/go-cube/pow"
)

var minerConfigFile *string

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "start the cube nonce search",
	Long: `usage example:
		miner start -c cmd/miner.toml
		start searching with the given config.`,

	Run: func(cmd *cobra.Command, args []string) {
		config, err := miner.LoadConfig(*minerConfigFile)
		if err != nil {
			fmt.Println(err)
			return
		}

		common.LogConfig.IsDebug = config.IsDebug
		common.LogConfig.PrintLog = config.PrintLog

		db, err := leveldb.NewLevelDB(filepath.Join(config.DataDir, "solutions"))
		if err != nil {
			fmt.Println(err)
			return
		}
		defer db.Close()

		m := miner.NewMiner(config, pow.NewEngine(config.Threads), miner.NewSolutionStore(db))
		if err := m.Start(); err != nil {
			fmt.Println(err)
			return
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		fmt.Printf("Mining for %d zeros...\n", config.TargetZeros)

		for {
			select {
			case <-interrupt:
				m.Stop()
				return

			case result := <-m.Results():
				for _, sol := range result.Solutions {
					fmt.Printf("[MATCH] k=%d\nData: %s\nHash: %s\n", sol.K, hexutil.BytesToHex(sol.Preimage()), sol.DigestHex())
				}

				if config.StopOnFound {
					return
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	minerConfigFile = startCmd.Flags().StringP("config", "c", "", "miner config file (required)")
	startCmd.MarkFlagRequired("config")
}
