package store

import (
	"fmt"
	"strings"
)

// illegalNameChars are rejected in container and entry names. The slash is
// reserved as the path separator.
const illegalNameChars = `'\/`

// Container is a tree node holding two independent namespaces: child
// containers and child entries. Names are unique within each namespace
// separately; a container and an entry may share a name at the same level.
// Children are exclusively owned: removing a container destroys its whole
// subtree, and no child is ever shared between parents.
//
// A Container is not safe for concurrent use. The store and everything
// under it belong to a single caller goroutine by contract.
type Container struct {
	containers map[string]*Container
	entries    map[string]*Entry
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		containers: make(map[string]*Container),
		entries:    make(map[string]*Entry),
	}
}

func (c *Container) HasContainer(name string) bool {
	_, ok := c.containers[name]
	return ok
}

// Container returns the named child container, or ErrNotFound.
func (c *Container) Container(name string) (*Container, error) {
	child, ok := c.containers[name]
	if !ok {
		return nil, fmt.Errorf("container %q: %w", name, ErrNotFound)
	}
	return child, nil
}

func (c *Container) ContainerCount() int {
	return len(c.containers)
}

// Containers returns a copy of the container namespace. Iteration order is
// not defined; callers sort if display order matters. Mutating the returned
// map does not affect the container, but the children themselves are the
// owned nodes.
func (c *Container) Containers() map[string]*Container {
	out := make(map[string]*Container, len(c.containers))
	for name, child := range c.containers {
		out[name] = child
	}
	return out
}

func (c *Container) HasEntry(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Entry returns the named entry, or ErrNotFound.
func (c *Container) Entry(name string) (*Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("entry %q: %w", name, ErrNotFound)
	}
	return e, nil
}

func (c *Container) EntryCount() int {
	return len(c.entries)
}

// Entries returns a copy of the entry namespace. Iteration order is not
// defined; callers sort if display order matters.
func (c *Container) Entries() map[string]*Entry {
	out := make(map[string]*Entry, len(c.entries))
	for name, e := range c.entries {
		out[name] = e
	}
	return out
}

// Clear empties both namespaces.
func (c *Container) Clear() {
	clear(c.containers)
	clear(c.entries)
}

// AddContainer inserts child under name, taking ownership. The empty name
// is accepted so that the unnamed root can travel through the codec; the
// store-level operations reject empty names before delegating here.
func (c *Container) AddContainer(child *Container, name string) error {
	if _, ok := c.containers[name]; ok {
		return fmt.Errorf("container %q: %w", name, ErrDuplicate)
	}
	if strings.ContainsAny(name, illegalNameChars) {
		return fmt.Errorf("container name %q: %w", name, ErrNaughtyCharacter)
	}
	c.containers[name] = child
	return nil
}

// RenameContainer moves the owned child from oldName to newName, preserving
// its subtree.
func (c *Container) RenameContainer(oldName, newName string) error {
	child, ok := c.containers[oldName]
	if !ok {
		return fmt.Errorf("container %q: %w", oldName, ErrNotFound)
	}
	if _, ok := c.containers[newName]; ok {
		return fmt.Errorf("container %q: %w", newName, ErrDuplicate)
	}
	if strings.ContainsAny(newName, illegalNameChars) {
		return fmt.Errorf("container name %q: %w", newName, ErrNaughtyCharacter)
	}
	delete(c.containers, oldName)
	c.containers[newName] = child
	return nil
}

// RemoveContainer removes the named child and with it the entire subtree
// it owns.
func (c *Container) RemoveContainer(name string) error {
	if _, ok := c.containers[name]; !ok {
		return fmt.Errorf("container %q: %w", name, ErrNotFound)
	}
	delete(c.containers, name)
	return nil
}

// AddEntry inserts e under name, taking ownership.
func (c *Container) AddEntry(e *Entry, name string) error {
	if _, ok := c.entries[name]; ok {
		return fmt.Errorf("entry %q: %w", name, ErrDuplicate)
	}
	if strings.ContainsAny(name, illegalNameChars) {
		return fmt.Errorf("entry name %q: %w", name, ErrNaughtyCharacter)
	}
	c.entries[name] = e
	return nil
}

// ReplaceEntry updates the entry stored under name in place. Unlike
// AddEntry it requires the name to already be present.
func (c *Container) ReplaceEntry(e *Entry, name string) error {
	if _, ok := c.entries[name]; !ok {
		return fmt.Errorf("entry %q: %w", name, ErrNotFound)
	}
	c.entries[name] = e
	return nil
}

// RenameEntry moves the entry from oldName to newName.
func (c *Container) RenameEntry(oldName, newName string) error {
	e, ok := c.entries[oldName]
	if !ok {
		return fmt.Errorf("entry %q: %w", oldName, ErrNotFound)
	}
	if _, ok := c.entries[newName]; ok {
		return fmt.Errorf("entry %q: %w", newName, ErrDuplicate)
	}
	if strings.ContainsAny(newName, illegalNameChars) {
		return fmt.Errorf("entry name %q: %w", newName, ErrNaughtyCharacter)
	}
	delete(c.entries, oldName)
	c.entries[newName] = e
	return nil
}

// RemoveEntry removes the named entry.
func (c *Container) RemoveEntry(name string) error {
	if _, ok := c.entries[name]; !ok {
		return fmt.Errorf("entry %q: %w", name, ErrNotFound)
	}
	delete(c.entries, name)
	return nil
}
