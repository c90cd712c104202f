/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package miner

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/cubeteam/go-cube/common"
)

// Config carries the search parameters of the miner.
type Config struct {
	// Diff is the cube difficulty multiplier of the puzzle.
	Diff uint32

	// TargetZeros is the required number of leading zero hex nibbles, in [0, 64].
	TargetZeros uint32

	// StartK is the first candidate identity to evaluate.
	StartK uint64

	// BatchSize is the number of candidates evaluated per batch.
	BatchSize uint64

	// Threads is the number of evaluation threads; 0 means one per CPU.
	Threads int

	// DataDir is the folder holding the solution database.
	DataDir string

	// StopOnFound stops the miner after the first batch with qualifying hits.
	StopOnFound bool

	// If IsDebug is true, the log level will be DebugLevel, otherwise it is InfoLevel
	IsDebug bool

	// If PrintLog is true, all logs will be printed in the console, otherwise they will be stored in the file.
	PrintLog bool
}

// DefaultConfig returns the search parameters of the original puzzle.
func DefaultConfig() *Config {
	return &Config{
		Diff:        630,
		TargetZeros: 13,
		StartK:      1,
		BatchSize:   1 << 20,
		Threads:     0,
		DataDir:     common.GetDefaultDataFolder(),
		StopOnFound: true,
		PrintLog:    true,
	}
}

// LoadConfig reads a TOML config file and validates it.
func LoadConfig(configFile string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configFile, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate returns an error if the config cannot drive a search.
func (config *Config) Validate() error {
	if config.Diff == 0 {
		return fmt.Errorf("cube difficulty multiplier must be positive")
	}

	if config.TargetZeros > 64 {
		return fmt.Errorf("target zeros %d out of range [0, 64]", config.TargetZeros)
	}

	if config.BatchSize == 0 {
		return fmt.Errorf("batch size must be positive")
	}

	if config.StartK > math.MaxUint64-config.BatchSize+1 {
		return fmt.Errorf("start k %d overflows the candidate space with batch size %d", config.StartK, config.BatchSize)
	}

	return nil
}
