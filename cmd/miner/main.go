/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package main

import (
	"github.com/cubeteam/go-cube/cmd/miner/cmd"
)

func main() {
	cmd.Execute()
}
