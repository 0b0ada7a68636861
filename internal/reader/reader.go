// Package reader loads the whole input file into memory as UTF-8 text
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// ErrIO wraps every failure to stat, open, read or decode the input file.
var ErrIO = errors.New("failed to read input")

// ReadInput returns the whole file as text. The file is closed before returning.
func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: error opening file %q: %w", ErrIO, fileName, err)
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", fmt.Errorf("%w: specified source filename %q is a directory", ErrIO, fileName)
	}

	file, err := os.Open(fileName)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't open file %q: %w", ErrIO, fileName, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't read file %q: %w", ErrIO, fileName, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: file %q is not valid UTF-8", ErrIO, fileName)
	}
	return string(raw), nil
}
