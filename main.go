// Command gostego hides messages in the least significant bits of WAV audio.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/gostego/internal/commands"
	"github.com/idelchi/gostego/internal/config"
	"github.com/idelchi/gostego/internal/logic"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, logic.New(), version)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
