package logger

import (
	"log"
	"os"
)

var (
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
	Debug   *log.Logger
	HTTP    *log.Logger
)

// Setup initializes the named loggers. Must be called before anything logs.
func Setup() {
	flags := log.Ldate | log.Ltime | log.Lshortfile

	Info = log.New(os.Stdout, "[INFO] ", flags)
	Warning = log.New(os.Stdout, "[WARN] ", flags)
	Error = log.New(os.Stderr, "[ERROR] ", flags)
	Debug = log.New(os.Stdout, "[DEBUG] ", flags)
	HTTP = log.New(os.Stdout, "[HTTP] ", log.Ldate|log.Ltime)
}
