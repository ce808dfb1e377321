package spectrum

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tahe0203/machinevision-toolbox/color/data"
	"github.com/tahe0203/machinevision-toolbox/internal/config"
)

var (
	defaultPath     []string
	defaultPathOnce sync.Once
)

// DefaultSearchPath returns the directories listed in MVTB_DATA_PATH. It is
// read once; an unparsable environment yields an empty path.
func DefaultSearchPath() []string {
	defaultPathOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			return
		}
		defaultPath = cfg.DataPath
	})
	return append([]string(nil), defaultPath...)
}

// Open resolves name to a spectral table and opens it. It returns the
// resolved location alongside the reader: a file path, or "embedded:" plus
// the table file name.
func Open(name string, dirs []string) (io.ReadCloser, string, error) {
	if name == "" {
		return nil, "", fmt.Errorf("%w: empty name", ErrSourceNotFound)
	}

	for _, p := range []string{name, name + data.Ext} {
		if f, err := openFile(p); err == nil {
			return f, p, nil
		}
	}

	base := filepath.Base(name)
	candidates := []string{base, base + data.Ext}

	for _, dir := range dirs {
		for _, c := range candidates {
			p := filepath.Join(dir, c)
			if f, err := openFile(p); err == nil {
				return f, p, nil
			}
		}
	}

	embedded := data.FS()
	for _, c := range candidates {
		if path.Ext(c) != data.Ext || strings.ContainsRune(c, '/') {
			continue
		}
		f, err := embedded.Open(c)
		if err == nil {
			return f, "embedded:" + c, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("spectrum: open embedded %s: %w", c, err)
		}
	}

	return nil, "", fmt.Errorf("%w: %q", ErrSourceNotFound, name)
}

// Read resolves, opens and parses the table called name without
// resampling it.
func Read(name string, dirs []string) (*Spectrum, error) {
	rc, where, err := Open(name, dirs)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	s, err := Parse(rc, strings.TrimSuffix(filepath.Base(name), data.Ext))
	if err != nil {
		return nil, fmt.Errorf("spectrum: %s: %w", where, err)
	}
	return s, nil
}

func openFile(p string) (*os.File, error) {
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("spectrum: %s is a directory", p)
	}
	return os.Open(p)
}
