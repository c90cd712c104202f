/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cubeteam/go-cube/common"
)

var (
	// LogFolder the default folder to write logs
	LogFolder = filepath.Join(common.GetTempFolder(), "Log")
)

// LogFile is the file which records all logs by users
const LogFile string = "log.log"

// CubeLog wraps log class
type CubeLog struct {
	log *logrus.Logger
}

var logMap map[string]*CubeLog
var getLogMutex sync.Mutex

// Panic Level, highest level of severity. Panic logs and then calls panic with the
// message passed to Debug, Info, ...
func (p *CubeLog) Panic(format string, args ...interface{}) {
	p.log.Panicf(format, args...)
}

// Fatal Level. Fatal logs and then calls `os.Exit(1)`. It will exit even if the
// logging level is set to Panic.
func (p *CubeLog) Fatal(format string, args ...interface{}) {
	p.log.Fatalf(format, args...)
}

// Error Level. Error logs and is used for errors that should be definitely noted.
func (p *CubeLog) Error(format string, args ...interface{}) {
	p.log.Errorf(format, args...)
}

// Warn Level. Non-critical entries that deserve eyes.
func (p *CubeLog) Warn(format string, args ...interface{}) {
	p.log.Warnf(format, args...)
}

// Info Level. General operational entries about what's going on inside the
// application.
func (p *CubeLog) Info(format string, args ...interface{}) {
	p.log.Infof(format, args...)
}

// Debug Level. Usually only enabled when debugging. Very verbose logging.
func (p *CubeLog) Debug(format string, args ...interface{}) {
	p.log.Debugf(format, args...)
}

// SetLevel sets the log level
func (p *CubeLog) SetLevel(level logrus.Level) {
	p.log.SetLevel(level)
}

// GetLevel gets the log level
func (p *CubeLog) GetLevel() logrus.Level {
	return p.log.GetLevel()
}

// GetLogger gets logrus.Logger object according to logName
// each module can have its own logger
func GetLogger(logName string, bConsole bool) *CubeLog {
	getLogMutex.Lock()
	defer getLogMutex.Unlock()
	if logMap == nil {
		logMap = make(map[string]*CubeLog)
	}
	curLog, ok := logMap[logName]
	if ok {
		return curLog
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})

	if bConsole {
		log.Out = os.Stdout
	} else {
		err := os.MkdirAll(LogFolder, os.ModePerm)
		if err != nil {
			panic(fmt.Sprintf("creating log dir failed: %s", err.Error()))
		}
		logFullPath := filepath.Join(LogFolder, LogFile)
		file, err := os.OpenFile(logFullPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			panic(fmt.Sprintf("open log file failed: %s", err.Error()))
		}
		log.Out = file
	}

	if common.LogConfig.IsDebug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	log.AddHook(&CallerHook{module: logName}) // add caller hook to print caller's file and line number
	curLog = &CubeLog{
		log: log,
	}
	logMap[logName] = curLog
	return curLog
}
