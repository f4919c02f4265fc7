package pdf

import (
	"errors"
	"os"
	"strings"
)

// ErrMissingResource reports that a required resource file does not exist.
var ErrMissingResource = errors.New("missing resource")

// MissingResourceError lists every required file that is absent. It matches
// ErrMissingResource with errors.Is.
type MissingResourceError struct {
	Paths []string
}

func (e *MissingResourceError) Error() string {
	var b strings.Builder
	b.WriteString("missing font files:")
	for _, p := range e.Paths {
		b.WriteString("\n- ")
		b.WriteString(p)
	}
	b.WriteString("\nplace the fonts under a 'fonts/' directory or point --font-dir at them")
	return b.String()
}

func (e *MissingResourceError) Is(target error) bool {
	return target == ErrMissingResource
}

// CheckFonts stats every path and returns a *MissingResourceError naming all
// paths that are absent or are not regular files. It returns nil when every
// file exists.
func CheckFonts(paths ...string) error {
	var missing []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &MissingResourceError{Paths: missing}
	}
	return nil
}
