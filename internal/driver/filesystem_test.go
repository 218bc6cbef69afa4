package driver

import (
	"path/filepath"
	"testing"
)

func TestFileSystemSaveAndLoadWorld(t *testing.T) {
	dir := t.TempDir()
	fs := FileSystem{Dir: dir}

	data := []byte("some world bytes")
	if err := fs.SaveWorld("game.zzt", data); err != nil {
		t.Fatalf("SaveWorld: %v", err)
	}

	got, err := fs.LoadWorld("game.zzt")
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("LoadWorld() = %q, want %q", got, data)
	}
}

func TestFileSystemSaveCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves", "nested")
	fs := FileSystem{Dir: dir}

	if err := fs.SaveWorld("a.sav", []byte("x")); err != nil {
		t.Fatalf("SaveWorld into nested dir: %v", err)
	}
}

func TestFileSystemResolveAbsolutePassthrough(t *testing.T) {
	fs := FileSystem{Dir: "/worlds"}
	got := fs.resolve("/tmp/abs.zzt")
	if got != "/tmp/abs.zzt" {
		t.Fatalf("resolve() = %q, want the absolute path unchanged", got)
	}
}
