package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed shaders
var builtin embed.FS

// SearchDirs lists the directories searched before the embedded shaders:
// the executable's assets dir, then the working directory's.
func SearchDirs() []string {
	dirs := make([]string, 0, 2)
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "assets", "shaders"))
	}
	return append(dirs, filepath.Join("assets", "shaders"))
}

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
// Files on disk override the embedded copies so shaders can be edited
// without rebuilding.
func LoadShader(name string) (string, error) {
	return loadShader(name, SearchDirs())
}

func loadShader(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return terminate(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("load shader %q: %w", name, err)
		}
	}
	b, err := builtin.ReadFile("shaders/" + name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return terminate(b), nil
}

// Ensure null termination for gl.Str
func terminate(b []byte) string {
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b)
}
