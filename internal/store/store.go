// Package store implements the hierarchical credential store: a tree of
// named containers holding named entries, addressed by slash-delimited
// paths and persisted as an encrypted serialized document.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cryptexhq/cryptex/internal/pathutil"
	"github.com/cryptexhq/cryptex/internal/vault"
)

// Store owns exactly one root container for its lifetime and serves all
// path-based operations on it. Mutations go through the CRUD surface only,
// never by direct tree manipulation, so name-legality and duplicate checks
// cannot be bypassed. Nothing is persisted until an explicit Save.
//
// A Store is single-threaded by contract: one owner, one caller goroutine.
type Store struct {
	root   *Container
	logger *slog.Logger
}

// New creates a store with a fresh empty root, for first-run creation.
func New() *Store {
	return &Store{root: NewContainer(), logger: slog.Default()}
}

// Parse constructs a store from a decrypted document. A malformed document
// fails with an error wrapping the parse diagnostic; the caller must treat
// that as "store could not be opened", not as an empty store.
func Parse(document []byte) (*Store, error) {
	root, err := parseDocument(document)
	if err != nil {
		return nil, err
	}
	return &Store{root: root, logger: slog.Default()}, nil
}

// Root returns the container at the root of the store.
func (s *Store) Root() *Container {
	return s.root
}

// IsEmpty reports whether the store has no containers and no entries.
func (s *Store) IsEmpty() bool {
	return s.root.ContainerCount() == 0 && s.root.EntryCount() == 0
}

// ContainerByPath resolves path to a container, walking one namespace
// lookup per non-empty segment. The root path resolves to the root with no
// traversal. A missing segment, or a segment naming an entry, fails with
// ErrNotFound.
func (s *Store) ContainerByPath(path string) (*Container, error) {
	dest := s.root
	for _, seg := range pathutil.Segments(path) {
		child, err := dest.Container(seg)
		if err != nil {
			return nil, err
		}
		dest = child
	}
	return dest, nil
}

// IsValidPath reports whether path resolves to a container or, for the
// final segment only, an entry. It is the containment boundary between the
// store and its caller: a failed walk is false, never an error, and an
// unexpected failure is logged rather than propagated.
func (s *Store) IsValidPath(path string) bool {
	dest := s.root
	segments := pathutil.Segments(path)
	for i, seg := range segments {
		if i < len(segments)-1 {
			child, err := dest.Container(seg)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					s.logger.Warn("unexpected failure walking path",
						"path", path, "error", err)
				}
				return false
			}
			dest = child
			continue
		}
		if !dest.HasContainer(seg) && !dest.HasEntry(seg) {
			return false
		}
	}
	return true
}

// AddEntry adds entry under entryName in the container at path. Duplicate
// and illegal-character failures from the container surface unchanged.
func (s *Store) AddEntry(entry *Entry, entryName, path string) error {
	if entry == nil {
		return fmt.Errorf("invalid entry")
	}
	if entryName == "" {
		return fmt.Errorf("invalid entry name")
	}
	dest, err := s.ContainerByPath(path)
	if err != nil {
		return err
	}
	return dest.AddEntry(entry, entryName)
}

// UpdateEntry replaces the entry at path with updated, renaming it to
// updatedName first when that differs from the current leaf name. The
// rename and the replace are two sequential mutations, not one atomic
// step. Renames across containers are not expressible here.
func (s *Store) UpdateEntry(path, updatedName string, updated *Entry) error {
	if updated == nil {
		return fmt.Errorf("invalid entry")
	}
	if updatedName == "" {
		return fmt.Errorf("invalid entry name")
	}
	parentPath, currentName := pathutil.Split(path)
	dest, err := s.ContainerByPath(parentPath)
	if err != nil {
		return err
	}
	if updatedName != currentName {
		if err := dest.RenameEntry(currentName, updatedName); err != nil {
			return err
		}
	}
	return dest.ReplaceEntry(updated, updatedName)
}

// EntryByPath resolves path to an entry, returning its name and the entry.
func (s *Store) EntryByPath(path string) (string, *Entry, error) {
	parentPath, entryName := pathutil.Split(path)
	dest, err := s.ContainerByPath(parentPath)
	if err != nil {
		return "", nil, err
	}
	entry, err := dest.Entry(entryName)
	if err != nil {
		return "", nil, err
	}
	return entryName, entry, nil
}

// EntriesByPath returns the entry namespace of the container at path.
func (s *Store) EntriesByPath(path string) (map[string]*Entry, error) {
	dest, err := s.ContainerByPath(path)
	if err != nil {
		return nil, err
	}
	return dest.Entries(), nil
}

// EntryCountByPath returns the number of entries in the container at path.
func (s *Store) EntryCountByPath(path string) (int, error) {
	dest, err := s.ContainerByPath(path)
	if err != nil {
		return 0, err
	}
	return dest.EntryCount(), nil
}

// AddContainer adds container under name in the container at path.
func (s *Store) AddContainer(container *Container, name, path string) error {
	if container == nil {
		return fmt.Errorf("invalid container")
	}
	if name == "" {
		return fmt.Errorf("invalid container name")
	}
	dest, err := s.ContainerByPath(path)
	if err != nil {
		return err
	}
	return dest.AddContainer(container, name)
}

// ContainersByPath returns the container namespace of the container at path.
func (s *Store) ContainersByPath(path string) (map[string]*Container, error) {
	dest, err := s.ContainerByPath(path)
	if err != nil {
		return nil, err
	}
	return dest.Containers(), nil
}

// ContainerCountByPath returns the number of child containers at path.
func (s *Store) ContainerCountByPath(path string) (int, error) {
	dest, err := s.ContainerByPath(path)
	if err != nil {
		return 0, err
	}
	return dest.ContainerCount(), nil
}

// Save serializes the tree and hands the document to the encryption layer
// for an encrypted write. Encryption failures propagate unmodified.
func (s *Store) Save(password []byte, filename string) error {
	document, err := s.Serialize()
	if err != nil {
		return err
	}
	return vault.Encrypt(password, document, filename)
}

// Open loads the store persisted at filename. A missing file is the
// first-run case: a fresh empty store is created, persisted immediately and
// returned. Decryption failures (wrong password, corrupt file) propagate as
// errors. A document that decrypts but does not parse is logged and yields
// a nil store with a nil error: "could not be opened" is a reported outcome
// distinct both from an error and from an open empty store, and callers
// must nil-check before use.
func Open(password []byte, filename string) (*Store, error) {
	if _, err := os.Stat(filename); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		slog.Debug("creating new password store", "file", filename)
		st := New()
		if err := st.Save(password, filename); err != nil {
			return nil, err
		}
		return st, nil
	}

	document, err := vault.Decrypt(password, filename)
	if err != nil {
		return nil, err
	}
	st, err := Parse(document)
	if err != nil {
		slog.Error("failed to open password store", "file", filename, "error", err)
		return nil, nil
	}
	return st, nil
}
