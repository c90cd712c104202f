/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cubeteam/go-cube/common"
)

var version bool

// rootCmd represents the base command called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "miner",
	Short: "miner command for the cube nonce search",
	Long:  `use "miner help [<command>]" for detailed usage`,
	Run: func(cmd *cobra.Command, args []string) {
		if version {
			fmt.Println(common.MinerVersion)
		} else {
			cmd.Help()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&version, "version", "v", false, "print version")
}
