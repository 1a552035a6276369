package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Ham-Taro-code/TextMeld/cmd"
	"github.com/Ham-Taro-code/TextMeld/pkg/logging"
	"github.com/Ham-Taro-code/TextMeld/pkg/version"
)

// Process exit codes. Interrupts are reported distinctly from other failures.
const (
	exitFailure   = 1
	exitInterrupt = 130
)

func main() {
	debug := false
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			debug = true
		}
	}

	if err := logging.Setup(debug, "TextMeld", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "textmeld: interrupted")
		syncLogger(logger)
		os.Exit(exitInterrupt)
	}()

	if err := cmd.Execute(logger); err != nil {
		fmt.Fprintf(os.Stderr, "textmeld: %v\n", err)
		logger.Error("textmeld execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(exitFailure)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger when stderr is a terminal or a regular
// file; syncing stderr on other descriptors fails with EINVAL on some
// platforms and is not worth reporting.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
