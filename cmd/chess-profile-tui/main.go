package main

import (
	"fmt"
	"os"

	"github.com/chessprofile/chess-profile/internal/config"
	"github.com/chessprofile/chess-profile/internal/tui"
)

func main() {
	settings := config.DefaultSettings()
	settings.ApplyEnv()

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
