package main

import (
	"os"

	"github.com/UnendingLoop/minigrep/internal/appmode"
)

// Usage: [IGNORE_CASE=] [USE_REGEX=] minigrep <query> <file_path>
func main() {
	os.Exit(appmode.RunLocal(os.Args, os.LookupEnv, os.Stdout, os.Stderr))
}
