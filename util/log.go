// MIT License
// Author: Umesh Patil, Neosemantix, Inc.

// Logging can be initialized three ways: by passing a LoggingCfg directly,
// by pointing at an uber JSON configuration file which carries a
// "LogSettings" element, or by calling InitializeLog with explicit
// arguments. Until one of those happens GlobalLogSettings stays nil and all
// log calls fall through to Go's built-in logging. Once initialized, output
// goes to the configured rotating log file.
package util

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggingCfg struct {
	LogFileName  string
	MaxSizeInMb  int
	Backups      int
	AgeInDays    int
	Compress     bool
	LogOnConsole bool
	DebugLog     bool
}

// Name of the JSON element in any configuration file which contains a
// LoggingCfg structure value.
const LoggingCfgJsonElementName = "LogSettings"

// Pointer to the structure which holds log settings in effect.
var GlobalLogSettings *LoggingCfg

// InitializeLog directs logging to the given rotating file:
// fn	:	log file with full path
// ms	:	maximum allowed log file size in megabytes
// bk	:	how many backups are retained
// age	:	past logs of how many days are retained
// compress:	whether rotated logs are compressed
func InitializeLog(fn string, ms int, bk int, age int, compress bool) {
	log.SetOutput(&lumberjack.Logger{
		Filename:   fn,
		MaxSize:    ms, // megabytes
		MaxBackups: bk,
		MaxAge:     age, // days
		Compress:   compress,
	})
	logFilePath, _ := filepath.Abs(fn)
	log.Printf("logFilePath: %s\n", logFilePath)
	GlobalLogSettings = &LoggingCfg{
		LogFileName: fn,
		MaxSizeInMb: ms,
		Backups:     bk,
		AgeInDays:   age,
		Compress:    compress,
	}
}

func SetLoggingCfg(ls *LoggingCfg) {
	if ls == nil {
		log.Fatal("Logging configuration is nil")
	}
	InitializeLog(ls.LogFileName, ls.MaxSizeInMb, ls.Backups, ls.AgeInDays, ls.Compress)
	GlobalLogSettings.DebugLog = ls.DebugLog
	GlobalLogSettings.LogOnConsole = ls.LogOnConsole
}

// SetLogSettings reads the LogSettings element of the given JSON
// configuration file and initializes logging from it.
func SetLogSettings(cfgFileName string) error {
	ls, err := ExtractCfgJsonEleFromFile(cfgFileName, LoggingCfgJsonElementName)
	if err != nil {
		return err
	}
	lc, err := FormLoggingCfg(ls)
	if err != nil {
		return err
	}
	SetLoggingCfg(lc)
	Log(fmt.Sprintf("Log Settings: %v", lc))
	return nil
}

// FormLoggingCfg makes the logging configuration struct from raw JSON.
func FormLoggingCfg(ls []byte) (*LoggingCfg, error) {
	var lc LoggingCfg
	err := json.Unmarshal(ls, &lc)
	return &lc, err
}

// SetConsoleLog enables or disables mirroring of log lines on the console.
func SetConsoleLog(val bool) {
	if GlobalLogSettings != nil {
		GlobalLogSettings.LogOnConsole = val
	}
}

// SetDebugLog enables or disables debug logging.
func SetDebugLog(val bool) {
	if GlobalLogSettings != nil {
		GlobalLogSettings.DebugLog = val
	}
}

// Log the given message.
func Log(msg string) {
	log.Println(msg)
	if GlobalLogSettings != nil && GlobalLogSettings.LogOnConsole {
		fmt.Println(msg)
	}
}

// LogDebug records the message only when debug logging is on.
func LogDebug(msg string) {
	if GlobalLogSettings != nil && GlobalLogSettings.DebugLog {
		Log(msg)
	}
}

// IsLoggingConfigured indicates whether logging has been set up or not.
func IsLoggingConfigured() bool {
	return GlobalLogSettings != nil
}
