// Package listing turns one level of the pastes tree into picker rows and
// reads a picked row back into an icon and a label.
package listing

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"rofipaste/internal/errors"
	"rofipaste/internal/icons"
	"rofipaste/internal/log"
	"rofipaste/pkg/types"

	"github.com/gobwas/glob"
)

const (
	// ExecMarker is appended to rows of executable pastes. It is display only.
	ExecMarker = " (exec)"
	// GoUpLabel labels the synthetic parent-folder row
	GoUpLabel = ".."
	// EditConfigLabel labels the synthetic config row
	EditConfigLabel = "Edit config"

	shebang = "#!"
)

// Lister reads folders into entries
type Lister struct {
	icons  *icons.Table
	ignore []glob.Glob
}

// New creates a lister. Names matching any ignore pattern are left out of
// every listing.
func New(table *icons.Table, ignore []string) (*Lister, error) {
	l := &Lister{icons: table}
	for _, pattern := range ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", pattern, errors.InvalidConfig, err)
		}
		l.ignore = append(l.ignore, g)
	}
	return l, nil
}

// Icons returns the table rows are classified with
func (l *Lister) Icons() *icons.Table {
	return l.icons
}

func (l *Lister) ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// List returns the entries of folder: files sorted by name, then folders
// sorted by name, then the edit-config row. The go-up row is not included;
// the caller adds it below the root.
func (l *Lister) List(folder string) ([]types.Entry, error) {
	children, err := os.ReadDir(folder)
	if err != nil {
		return nil, errors.NewNavigationError("cannot read folder", folder, errors.FolderUnreadable, err)
	}

	var files, folders []types.Entry
	for _, child := range children {
		name := child.Name()
		if l.ignored(name) {
			continue
		}
		path := filepath.Join(folder, name)

		isDir := child.IsDir()
		if child.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				log.LogWithFields(log.F("path", path), log.F("error", err.Error())).Warn("Skipping broken link")
				continue
			}
			isDir = info.IsDir()
		}

		if isDir {
			folders = append(folders, types.Entry{
				Label: name,
				Icon:  l.icons.Folder(),
				Kind:  types.KindFolder,
			})
			continue
		}

		executable, err := hasShebang(path)
		if err != nil {
			log.LogWithFields(log.F("path", path), log.F("error", err.Error())).Warn("Skipping unreadable paste")
			continue
		}
		files = append(files, l.fileEntry(name, executable))
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Label < files[j].Label })
	sort.Slice(folders, func(i, j int) bool { return folders[i].Label < folders[j].Label })

	entries := make([]types.Entry, 0, len(files)+len(folders)+1)
	entries = append(entries, files...)
	entries = append(entries, folders...)
	entries = append(entries, l.EditConfigEntry())

	log.Debugf("Listed %s: %d files, %d folders", folder, len(files), len(folders))
	return entries, nil
}

func (l *Lister) fileEntry(name string, executable bool) types.Entry {
	entry := types.Entry{
		Label:        name,
		Icon:         l.icons.DefaultIcon(),
		Kind:         types.KindFile,
		IsExecutable: executable,
	}

	_, ext, found := strings.Cut(name, ".")
	if !found {
		return entry
	}
	entry.Extension = ext

	label := strings.TrimSuffix(name, "."+ext)
	if l.icons.Known(ext) && label != "" {
		entry.Icon = l.icons.Classify(ext)
		entry.Label = label
	}
	return entry
}

// GoUpEntry is the row leading to the parent folder
func (l *Lister) GoUpEntry() types.Entry {
	return types.Entry{Label: GoUpLabel, Icon: l.icons.GoUp(), Kind: types.KindGoUp}
}

// EditConfigEntry is the row opening the config file
func (l *Lister) EditConfigEntry() types.Entry {
	return types.Entry{Label: EditConfigLabel, Icon: l.icons.EditConfig(), Kind: types.KindEditConfig}
}

// Render formats an entry as one picker row
func Render(e types.Entry) string {
	line := string(e.Icon) + " " + e.Label
	if e.Kind == types.KindFile && e.IsExecutable {
		line += ExecMarker
	}
	return line
}

// RenderAll formats entries, one row each
func RenderAll(entries []types.Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = Render(e)
	}
	return lines
}

// ParseLine splits a picked row into its icon and label, dropping the exec
// marker. Labels keep their inner spacing.
func ParseLine(line string) (types.Icon, string, error) {
	line = strings.TrimRight(line, "\r\n")
	icon, label, found := strings.Cut(line, " ")
	if !found || icon == "" || label == "" {
		return "", "", errors.NewNavigationError("malformed selection", line, errors.MalformedSelection, nil)
	}
	label = strings.TrimSuffix(label, ExecMarker)
	if label == "" {
		return "", "", errors.NewNavigationError("malformed selection", line, errors.MalformedSelection, nil)
	}
	return types.Icon(icon), label, nil
}

// FileName rebuilds the on-disk name of a paste from its row
func (l *Lister) FileName(icon types.Icon, label string) (string, error) {
	ext, ok := l.icons.Extension(icon)
	if !ok {
		return "", errors.NewNavigationError("unknown entry icon", string(icon), errors.UnknownIcon, nil)
	}
	if ext == "" {
		return label, nil
	}
	return label + "." + ext, nil
}

func hasShebang(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, len(shebang))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return string(head[:n]) == shebang, nil
}
