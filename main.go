package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"diskclean/cli"
)

var version = "dev"

func tempDir() string {
	if runtime.GOOS == "darwin" {
		return "/tmp"
	}
	return os.TempDir()
}

func main() {
	logFile, err := os.CreateTemp(tempDir(), "diskclean-*.log")
	if err != nil {
		log.Fatalf("Error creating log file: %v", err)
	}
	log.SetFlags(log.Lshortfile | log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("[DSKCLN] ")
	log.SetOutput(logFile)

	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
