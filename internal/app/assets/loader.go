// internal/app/assets/loader.go
package assets

import (
	"os"
)

// InterpretationNotFound is shown in place of a missing interpretation file.
const InterpretationNotFound = "Interpretation file not found."

// LoadText returns the contents of the interpretation file at path, or
// InterpretationNotFound when it cannot be read. It never returns an error.
func LoadText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return InterpretationNotFound
	}
	return string(data)
}

// ImageExists reports whether a regular file exists at path.
func ImageExists(path string) bool {
	return regularFile(path)
}

// TextExists reports whether the interpretation file at path can be shown,
// as opposed to falling back to InterpretationNotFound.
func TextExists(path string) bool {
	return regularFile(path)
}

func regularFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
