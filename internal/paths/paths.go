// Package paths centralizes the file and directory names iconbg works with.
// The default icon list and the repo layout are defined here as the single
// source of truth.
package paths

import (
	"os"
	"path/filepath"
)

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Repo-relative names.
const (
	PublicDir  = "public"
	ConfigFile = "iconbg.toml"
	LogFile    = "iconbg.log"
)

// PWA icons flattened by default, in processing order.
const (
	AndroidChrome192 = "android-chrome-192x192.png"
	AndroidChrome512 = "android-chrome-512x512.png"
	AppleTouchIcon   = "apple-touch-icon.png"
)

// DefaultIcons returns the default icon list in processing order.
func DefaultIcons() []string {
	return []string{AndroidChrome192, AndroidChrome512, AppleTouchIcon}
}

// ///////////////////////////////////////////////
// Root
// ///////////////////////////////////////////////

// Root provides path construction methods rooted at a web project directory.
type Root struct {
	Dir string
}

// Public returns the full path to the public assets directory.
func (r Root) Public() string { return filepath.Join(r.Dir, PublicDir) }

// Config returns the full path to the optional config file.
func (r Root) Config() string { return filepath.Join(r.Dir, ConfigFile) }

// Resolve joins a repo-relative path onto the root. Absolute paths are
// returned unchanged.
func (r Root) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.Dir, p)
}

// FindRoot walks up from start looking for a directory that contains a
// "public" subdirectory and returns it. When none is found the absolute form
// of start is returned.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for dir := abs; ; {
		if info, err := os.Stat(Root{Dir: dir}.Public()); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}
