// Package workspace keeps parsed kv documents for a directory tree.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/kv"
)

var log = commonlog.GetLogger("parsec.workspace")

type Workspace struct {
	mu    sync.RWMutex
	root  string
	exts  []string
	files map[string]*File
}

// File is the latest known state of a source file. Err holds the
// *kv.SyntaxError of the last parse, if any; Document is nil in that case.
type File struct {
	Path     string
	Content  []byte
	Document *kv.Document
	Err      error
}

// New creates an empty workspace rooted at root that tracks files with one of
// the given extensions.
func New(root string, exts []string) *Workspace {
	return &Workspace{
		root:  root,
		exts:  slices.Clone(exts),
		files: make(map[string]*File),
	}
}

func (w *Workspace) Root() string {
	return w.root
}

// Tracks reports whether path has one of the workspace extensions.
func (w *Workspace) Tracks(path string) bool {
	return slices.Contains(w.exts, filepath.Ext(path))
}

// ScanAll parses every tracked file below the root. Hidden directories are
// skipped; unreadable files are logged and skipped.
func (w *Workspace) ScanAll() error {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warningf("walk %s: %s", path, err)
			return nil
		}
		if d.IsDir() {
			if path != w.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.Tracks(path) {
			return nil
		}
		if _, err := w.ScanFile(path); err != nil {
			log.Warningf("%s", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", w.root, err)
	}
	log.Infof("scanned %s: %d files", w.root, w.Len())
	return nil
}

// ScanFile reads path from disk and parses it.
func (w *Workspace) ScanFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return w.UpdateFile(path, content), nil
}

// UpdateFile replaces the content of path and parses it.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	doc, err := kv.Parse(string(content))
	f := &File{Path: path, Content: content, Document: doc, Err: err}
	if err != nil {
		log.Debugf("%s: %s", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = f
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

// GetFile returns the file stored under path, or nil.
func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns all files ordered by path.
func (w *Workspace) Files() []*File {
	w.mu.RLock()
	defer w.mu.RUnlock()

	files := make([]*File, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	slices.SortFunc(files, func(a, b *File) int {
		return strings.Compare(a.Path, b.Path)
	})
	return files
}

func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.files)
}
