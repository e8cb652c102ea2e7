package utils

import (
	logger "log"

	"github.com/fatih/color"
)

func Log(msg string, args ...interface{}) {
	logger.Printf(color.MagentaString(msg), args...)
}

func Logf(msg string, args ...interface{}) {
	logger.Printf(msg, args...)
}

func LogRED(msg string, args ...interface{}) {
	logger.Printf(color.RedString(msg), args...)
}

func LogGREEN(msg string, args ...interface{}) {
	logger.Printf(color.GreenString(msg), args...)
}

func LogCYAN(msg string, args ...interface{}) {
	logger.Printf(color.CyanString(msg), args...)
}
