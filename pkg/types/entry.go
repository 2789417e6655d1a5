package types

// Icon is the display tag leading every rendered listing line.
// Icons never contain whitespace; the first space on a line ends the icon.
type Icon string

// EntryKind says what a listing row stands for
type EntryKind int

const (
	// KindFile is a paste file
	KindFile EntryKind = iota
	// KindFolder is a subfolder of the current folder
	KindFolder
	// KindGoUp is the synthetic ".." row shown below the pastes root
	KindGoUp
	// KindEditConfig is the synthetic row that opens the config file
	KindEditConfig
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	case KindGoUp:
		return "go-up"
	case KindEditConfig:
		return "edit-config"
	}
	return "unknown"
}

// Entry is one row of a folder listing. Entries are rebuilt on every render
// and never mutated afterwards.
type Entry struct {
	Label        string    // display name; files lose their recognised extension
	Icon         Icon      // classification tag
	Kind         EntryKind // what selecting the row does
	IsExecutable bool      // file starts with a shebang (files only)
	Extension    string    // everything after the first dot of the file name (files only)
}
