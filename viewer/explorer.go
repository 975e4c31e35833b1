package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// An Entry is a single item in an explorer listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// DisplayName returns the entry's name as shown in a listing. Directory names carry a trailing slash.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// Explorer lists the contents of a directory and tracks the selected entry.
type Explorer struct {
	dir      string
	entries  []Entry
	selected int
}

// NewExplorer creates an explorer positioned at dir.
func NewExplorer(dir string) (*Explorer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %v: %w", dir, err)
	}

	e := &Explorer{}
	if err := e.load(abs); err != nil {
		return nil, err
	}
	return e, nil
}

// load lists dir. Directories come first; within each group entries are ordered by name. The selection is reset to
// the first entry.
func (e *Explorer) load(dir string) error {
	infos, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %v: %w", dir, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())

		isDir := info.IsDir()
		if info.Type()&os.ModeSymlink != 0 {
			if stat, err := os.Stat(path); err == nil {
				isDir = stat.IsDir()
			}
		}
		entries = append(entries, Entry{Name: info.Name(), Path: path, IsDir: isDir})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	e.dir, e.entries, e.selected = dir, entries, 0
	return nil
}

// Dir returns the absolute path of the current directory.
func (e *Explorer) Dir() string {
	return e.dir
}

// Entries returns the entries of the current directory.
func (e *Explorer) Entries() []Entry {
	return e.entries
}

// Index returns the index of the selected entry, or -1 if the directory is empty.
func (e *Explorer) Index() int {
	if len(e.entries) == 0 {
		return -1
	}
	return e.selected
}

// Selected returns the selected entry. The second result is false if the directory is empty.
func (e *Explorer) Selected() (Entry, bool) {
	if len(e.entries) == 0 {
		return Entry{}, false
	}
	return e.entries[e.selected], true
}

// Select selects the entry at index i. Out-of-range indices are ignored.
func (e *Explorer) Select(i int) {
	if i >= 0 && i < len(e.entries) {
		e.selected = i
	}
}

// Next moves the selection down, wrapping around to the first entry.
func (e *Explorer) Next() {
	if len(e.entries) == 0 {
		return
	}
	e.selected = (e.selected + 1) % len(e.entries)
}

// Previous moves the selection up, wrapping around to the last entry.
func (e *Explorer) Previous() {
	if len(e.entries) == 0 {
		return
	}
	e.selected = (e.selected + len(e.entries) - 1) % len(e.entries)
}

// Parent moves to the parent directory. At the filesystem root this is a no-op.
func (e *Explorer) Parent() error {
	parent := filepath.Dir(e.dir)
	if parent == e.dir {
		return nil
	}
	return e.load(parent)
}

// Enter moves into the selected entry if it is a directory. The selected entry is returned in either case; the
// second result is false if there was nothing to select.
func (e *Explorer) Enter() (Entry, bool, error) {
	entry, ok := e.Selected()
	if !ok || !entry.IsDir {
		return entry, ok, nil
	}

	dir, err := filepath.EvalSymlinks(entry.Path)
	if err != nil {
		return entry, true, fmt.Errorf("resolving %v: %w", entry.Path, err)
	}
	return entry, true, e.load(dir)
}

// Refresh re-reads the current directory.
func (e *Explorer) Refresh() error {
	selected := e.selected
	if err := e.load(e.dir); err != nil {
		return err
	}
	e.Select(selected)
	return nil
}

// Resolve interprets name relative to the current directory.
func (e *Explorer) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(e.dir, name)
}
