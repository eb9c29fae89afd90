// cmdheat reports the most frequently used commands in a shell history file.
package main

import (
	"cmdheat/cmd"
)

var (
	// Version is set during build via ldflags
	Version = "dev"
	// BuildTime is set during build via ldflags
	BuildTime = "unknown"
	// Commit is set during build via ldflags
	Commit = "unknown"
)

func main() {
	cmd.Version = Version
	cmd.BuildTime = BuildTime
	cmd.Commit = Commit
	cmd.SetVersionInfo()

	cmd.Execute()
}
