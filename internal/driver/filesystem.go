package driver

import (
	"os"
	"path/filepath"
)

// FileSystem reads and writes .ZZT/.SAV world files straight off the
// local disk, the narrow Filesystem port the engine needs (spec §6
// "Filesystem"). The original engine's driver concatenates a bare name
// with an extension rather than accepting full paths; Dir lets callers
// reproduce that by joining once up front.
type FileSystem struct {
	Dir string
}

// LoadWorld reads the named file from Dir (or an absolute path as-is).
func (f FileSystem) LoadWorld(name string) ([]byte, error) {
	return os.ReadFile(f.resolve(name))
}

// SaveWorld writes data to the named file, creating Dir if needed. On
// first-write failure it retries once, matching the original's "save
// fails, try to reopen and write again" recovery described in spec §7.
func (f FileSystem) SaveWorld(name string, data []byte) error {
	path := f.resolve(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		err = os.WriteFile(path, data, 0o644)
	}
	return err
}

func (f FileSystem) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if f.Dir == "" {
		return name
	}
	return filepath.Join(f.Dir, name)
}
