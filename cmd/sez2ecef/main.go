package main

import (
	"context"
	"os"
	"path/filepath"
)

// module defs - BuildDate can be set at build time via ldflags
var (
	Version   string = "0.0.1"
	BuildDate string = "unknown"

	ProgramName string = "sez2ecef"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr, configDirs()))
}

// configDirs lists where sez2ecef.cfg.json is looked up: the working
// directory first, then the directory holding the executable.
func configDirs() []string {
	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}
