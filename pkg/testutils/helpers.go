package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WritePastes creates a pastes tree under root. Keys are slash separated
// paths relative to root; a key ending in "/" creates an empty folder.
func WritePastes(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// DefaultPastes creates a small tree with a plain paste, a script and a
// subfolder
func DefaultPastes(t *testing.T, root string) {
	WritePastes(t, root, map[string]string{
		"greeting.txt":       "hello there\n\n",
		"date.sh":            "#!/bin/sh\necho today\n",
		"snippets/loop.py":   "for i in range(3):\n    print(i)\n",
		"snippets/deep/x.md": "# x\n",
	})
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
