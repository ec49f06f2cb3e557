// Package plog provides the leveled, colorized logger used by the façade
// (package core). Core packages (asset, fee, txn, state, execution,
// mempool) never import plog — the engine itself does not log — and the
// CLI does not use it either.
package plog

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

const envLevel = "PLATARIUM_LOG_LEVEL"

func init() {
	level := strings.ToUpper(os.Getenv(envLevel))
	if level == "" {
		level = "INFO"
	}

	infoPrefix := color.New(color.FgGreen).SprintFunc()("[INFO] ")
	warnPrefix := color.New(color.FgYellow).SprintFunc()("[WARN] ")
	errorPrefix := color.New(color.FgRed).SprintFunc()("[ERROR] ")
	debugPrefix := color.New(color.FgBlue).SprintFunc()("[DEBUG] ")

	flags := log.Ldate | log.Ltime

	Info = log.New(os.Stdout, infoPrefix, flags)
	Warn = log.New(os.Stdout, warnPrefix, flags)
	Error = log.New(os.Stderr, errorPrefix, flags)
	Debug = log.New(os.Stdout, debugPrefix, flags)

	if level != "DEBUG" {
		Debug.SetOutput(io.Discard)
	}
	if level != "DEBUG" && level != "INFO" {
		Info.SetOutput(io.Discard)
	}
	if level != "DEBUG" && level != "INFO" && level != "WARN" {
		Warn.SetOutput(io.Discard)
	}
	// Error is always enabled.
}
