package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadShaderEmbedded(t *testing.T) {
	src, err := loadShader("triangle.vert", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(src, "#version 330 core") {
		t.Fatalf("unexpected source start: %q", src[:20])
	}
	if !strings.HasSuffix(src, "\x00") {
		t.Fatal("source is not NUL terminated")
	}
}

func TestLoadShaderPrefersDisk(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(second, "triangle.frag"), []byte("override\x00"), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := loadShader("triangle.frag", []string{first, second})
	if err != nil {
		t.Fatal(err)
	}
	if src != "override\x00" {
		t.Fatalf("src = %q, want the on-disk override once terminated", src)
	}
}

func TestLoadShaderMissing(t *testing.T) {
	_, err := loadShader("nope.glsl", []string{t.TempDir()})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestSearchDirsEndsWithWorkingDir(t *testing.T) {
	dirs := SearchDirs()
	if got := dirs[len(dirs)-1]; got != filepath.Join("assets", "shaders") {
		t.Fatalf("last dir = %q", got)
	}
}
