// Package parser puts os.Args and environment toggles into model.Config
package parser

import (
	"errors"

	"github.com/UnendingLoop/minigrep/internal/model"
)

const (
	EnvIgnoreCase = "IGNORE_CASE"
	EnvUseRegex   = "USE_REGEX"
	EnvDebug      = "GREP_DEBUG"
)

// ErrNotEnoughArgs - не переданы query и/или file path
var ErrNotEnoughArgs = errors.New("not enough arguments")

// BuildConfig expects args as in os.Args: program name, query, file path.
// Toggles are read by presence only, an empty value still counts as set.
func BuildConfig(args []string, lookupEnv func(string) (string, bool)) (*model.Config, error) {
	if len(args) < 3 {
		return nil, ErrNotEnoughArgs
	}

	return &model.Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: isSet(lookupEnv, EnvIgnoreCase),
		UseRegex:   isSet(lookupEnv, EnvUseRegex),
		Debug:      isSet(lookupEnv, EnvDebug),
	}, nil
}

func isSet(lookupEnv func(string) (string, bool), key string) bool {
	_, ok := lookupEnv(key)
	return ok
}
