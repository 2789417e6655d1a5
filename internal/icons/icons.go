// Package icons classifies paste files by extension and maps icons back to
// the extension they stand for.
package icons

import (
	"fmt"
	"sort"

	"rofipaste/internal/config"
	"rofipaste/pkg/types"
)

// Table is an immutable extension/icon mapping built from configuration
type Table struct {
	folder     types.Icon
	goUp       types.Icon
	editConfig types.Icon
	fallback   types.Icon
	byExt      map[string]types.Icon
	byIcon     map[types.Icon]string
}

// New builds a table. Every icon must be distinct: selection lines carry only
// the icon, so two meanings sharing one icon could not be told apart.
func New(settings config.IconSettings) (*Table, error) {
	t := &Table{
		folder:     types.Icon(settings.Folder),
		goUp:       types.Icon(settings.GoUp),
		editConfig: types.Icon(settings.EditConfig),
		fallback:   types.Icon(settings.Default),
		byExt:      make(map[string]types.Icon, len(settings.Extensions)),
		byIcon:     make(map[types.Icon]string, len(settings.Extensions)+1),
	}

	seen := map[types.Icon]string{}
	claim := func(icon types.Icon, owner string) error {
		if icon == "" {
			return fmt.Errorf("icon for %s is empty", owner)
		}
		if prev, ok := seen[icon]; ok {
			return fmt.Errorf("icon %q used for both %s and %s", icon, prev, owner)
		}
		seen[icon] = owner
		return nil
	}

	for _, reserved := range []struct {
		icon  types.Icon
		owner string
	}{
		{t.folder, "folders"},
		{t.goUp, "the go-up entry"},
		{t.editConfig, "the edit-config entry"},
		{t.fallback, "unknown extensions"},
	} {
		if err := claim(reserved.icon, reserved.owner); err != nil {
			return nil, err
		}
	}

	// Sorted so a duplicate is always reported the same way
	exts := make([]string, 0, len(settings.Extensions))
	for ext := range settings.Extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	for _, ext := range exts {
		icon := types.Icon(settings.Extensions[ext])
		if err := claim(icon, "."+ext); err != nil {
			return nil, err
		}
		t.byExt[ext] = icon
		t.byIcon[icon] = ext
	}
	t.byIcon[t.fallback] = ""

	return t, nil
}

// Classify returns the icon for an extension. Unknown and empty extensions
// get the default icon.
func (t *Table) Classify(ext string) types.Icon {
	if icon, ok := t.byExt[ext]; ok {
		return icon
	}
	return t.fallback
}

// Known reports whether ext has its own icon
func (t *Table) Known(ext string) bool {
	_, ok := t.byExt[ext]
	return ok
}

// Extension returns the extension a paste icon stands for. The default icon
// stands for the empty extension: such files keep their full name as label.
func (t *Table) Extension(icon types.Icon) (string, bool) {
	ext, ok := t.byIcon[icon]
	return ext, ok
}

// Kind tells which kind of entry an icon introduces
func (t *Table) Kind(icon types.Icon) (types.EntryKind, bool) {
	switch icon {
	case t.folder:
		return types.KindFolder, true
	case t.goUp:
		return types.KindGoUp, true
	case t.editConfig:
		return types.KindEditConfig, true
	}
	if _, ok := t.byIcon[icon]; ok {
		return types.KindFile, true
	}
	return types.KindFile, false
}

func (t *Table) Folder() types.Icon      { return t.folder }
func (t *Table) GoUp() types.Icon        { return t.goUp }
func (t *Table) EditConfig() types.Icon  { return t.editConfig }
func (t *Table) DefaultIcon() types.Icon { return t.fallback }
