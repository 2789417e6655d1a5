package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FolderState is the navigation cursor. Current is always Base or a folder
// below it.
type FolderState struct {
	Base    string
	Current string
}

// NewFolderState starts a cursor at base
func NewFolderState(base string) FolderState {
	base = filepath.Clean(base)
	return FolderState{Base: base, Current: base}
}

// AtRoot reports whether the cursor sits on the pastes root
func (s FolderState) AtRoot() bool {
	return s.Current == s.Base
}

// Descend moves into the child folder name. Names that are not a single
// path element are rejected so the cursor cannot leave Base.
func (s *FolderState) Descend(name string) error {
	if !IsPlainName(name) {
		return fmt.Errorf("invalid folder name %q", name)
	}
	s.Current = filepath.Join(s.Current, name)
	return nil
}

// Ascend moves to the parent folder. It is a no-op at the root.
func (s *FolderState) Ascend() {
	if s.AtRoot() {
		return
	}
	parent := filepath.Dir(s.Current)
	if !Within(s.Base, parent) {
		parent = s.Base
	}
	s.Current = parent
}

// Path joins a plain name onto the current folder
func (s FolderState) Path(name string) (string, error) {
	if !IsPlainName(name) {
		return "", fmt.Errorf("invalid entry name %q", name)
	}
	return filepath.Join(s.Current, name), nil
}

// IsPlainName reports whether name is a single, non-special path element
func IsPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, filepath.Separator) && !strings.ContainsRune(name, '/')
}

// Within reports whether path is base or below it
func Within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
