package main

import (
	"os"

	"github.com/joho/godotenv"

	appLog "remindcal/internal/log"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		appLog.Error("remindcal failed", err)
		os.Exit(1)
	}
}
