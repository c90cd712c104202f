/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package common

import (
	"os"
	"os/user"
	"path/filepath"
)

// MinerVersion is the version of the go-cube miner
const MinerVersion = "go-cube miner 1.0"

// LogConfig is the configuration of log
var LogConfig = &LogSetting{PrintLog: true, IsDebug: false}

// LogSetting is the configuration of log
type LogSetting struct {
	// If IsDebug is true, the log level will be DebugLevel, otherwise it is InfoLevel
	IsDebug bool `json:"isDebug"`

	// If PrintLog is true, all logs will be printed in the console, otherwise they will be stored in the file.
	PrintLog bool `json:"printLog"`
}

var (
	// tempFolder used to store temp file, such as log files
	tempFolder string

	// defaultDataFolder used to store persistent data info, such as the solution database
	defaultDataFolder string
)

func init() {
	tempFolder = filepath.Join(os.TempDir(), "cubeTemp")

	usr, err := user.Current()
	if err != nil {
		panic(err)
	}
	defaultDataFolder = filepath.Join(usr.HomeDir, ".gocube")
}

// GetTempFolder uses a getter to implement readonly
func GetTempFolder() string {
	return tempFolder
}

// GetDefaultDataFolder gets the default data folder
func GetDefaultDataFolder() string {
	return defaultDataFolder
}
