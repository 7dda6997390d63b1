package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var illegalNames = []string{"'", `\`, "/"}

func TestContainerClear(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "Foo"))
	assert.NoError(t, c.AddEntry(&Entry{}, "Bar"))
	assert.Equal(t, 1, c.ContainerCount())
	assert.Equal(t, 1, c.EntryCount())

	c.Clear()
	assert.Equal(t, 0, c.ContainerCount())
	assert.Equal(t, 0, c.EntryCount())
}

func TestAddContainer(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "A New Beginning"))
	assert.True(t, c.HasContainer("A New Beginning"))
}

func TestGetContainer(t *testing.T) {
	c := NewContainer()
	child := NewContainer()
	assert.NoError(t, c.AddContainer(child, "A New Beginning"))

	got, err := c.Container("A New Beginning")
	assert.NoError(t, err)
	assert.Same(t, child, got)
}

func TestGetNonexistentContainer(t *testing.T) {
	c := NewContainer()
	_, err := c.Container("Anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetContainers(t *testing.T) {
	c := NewContainer()
	child := NewContainer()
	assert.NoError(t, c.AddContainer(child, "Confidence"))

	containers := c.Containers()
	assert.Len(t, containers, 1)
	assert.Same(t, child, containers["Confidence"])
}

func TestContainersReturnsCopy(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "Keep"))

	containers := c.Containers()
	delete(containers, "Keep")
	assert.True(t, c.HasContainer("Keep"))
}

func TestRenameNonexistentContainer(t *testing.T) {
	c := NewContainer()
	assert.ErrorIs(t, c.RenameContainer("old", "new"), ErrNotFound)
}

func TestRenameDuplicateContainer(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "A New Beginning"))
	assert.NoError(t, c.AddContainer(NewContainer(), "A Newer Beginning"))
	assert.ErrorIs(t, c.RenameContainer("A New Beginning", "A Newer Beginning"), ErrDuplicate)
}

func TestRenameContainer(t *testing.T) {
	c := NewContainer()
	child := NewContainer()
	assert.NoError(t, child.AddEntry(&Entry{}, "Inner"))
	assert.NoError(t, c.AddContainer(child, "A New Beginning"))

	assert.NoError(t, c.RenameContainer("A New Beginning", "A Newer Beginning"))
	assert.ErrorIs(t, c.RemoveContainer("A New Beginning"), ErrNotFound)

	// The same owned node moved, subtree intact
	got, err := c.Container("A Newer Beginning")
	assert.NoError(t, err)
	assert.Same(t, child, got)
	assert.True(t, got.HasEntry("Inner"))

	assert.NoError(t, c.RemoveContainer("A Newer Beginning"))
	assert.Equal(t, 0, c.ContainerCount())
}

func TestAddAndRemoveContainer(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "Queen"))
	assert.Equal(t, 1, c.ContainerCount())
	assert.NoError(t, c.RemoveContainer("Queen"))
	assert.Equal(t, 0, c.ContainerCount())
}

func TestAddDuplicateContainer(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "A New Beginning"))
	assert.ErrorIs(t, c.AddContainer(NewContainer(), "A New Beginning"), ErrDuplicate)
}

func TestIllegalContainerName(t *testing.T) {
	c := NewContainer()
	for _, ch := range illegalNames {
		for _, name := range []string{ch + "after", "before" + ch + "after", "before" + ch} {
			assert.ErrorIs(t, c.AddContainer(NewContainer(), name), ErrNaughtyCharacter, "name %q", name)
			assert.ErrorIs(t, c.AddEntry(&Entry{}, name), ErrNaughtyCharacter, "name %q", name)
		}
	}
}

func TestRenameToIllegalName(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "ok"))
	assert.NoError(t, c.AddEntry(&Entry{}, "ok"))
	assert.ErrorIs(t, c.RenameContainer("ok", "not'ok"), ErrNaughtyCharacter)
	assert.ErrorIs(t, c.RenameEntry("ok", "not/ok"), ErrNaughtyCharacter)
}

func TestAddEntry(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddEntry(&Entry{}, "Rogue One"))
	assert.True(t, c.HasEntry("Rogue One"))
}

func TestReplaceEntry(t *testing.T) {
	c := NewContainer()
	old := NewEntry("old_username", "old_password", "old_url")
	assert.NoError(t, c.AddEntry(old, "Old One"))

	updated := NewEntry("new_username", "new_password", "new_url")
	assert.NoError(t, c.ReplaceEntry(updated, "Old One"))

	got, err := c.Entry("Old One")
	assert.NoError(t, err)
	assert.Same(t, updated, got)
}

func TestReplaceNonexistentEntry(t *testing.T) {
	c := NewContainer()
	assert.ErrorIs(t, c.ReplaceEntry(&Entry{}, "Anything"), ErrNotFound)
}

func TestGetEntry(t *testing.T) {
	c := NewContainer()
	e := &Entry{}
	assert.NoError(t, c.AddEntry(e, "Enter the Dragon"))

	got, err := c.Entry("Enter the Dragon")
	assert.NoError(t, err)
	assert.Same(t, e, got)
}

func TestGetNonexistentEntry(t *testing.T) {
	c := NewContainer()
	_, err := c.Entry("Anything")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetEntries(t *testing.T) {
	c := NewContainer()
	e := &Entry{}
	assert.NoError(t, c.AddEntry(e, "Rogue One"))

	entries := c.Entries()
	assert.Len(t, entries, 1)
	assert.Same(t, e, entries["Rogue One"])
}

func TestRenameNonexistentEntry(t *testing.T) {
	c := NewContainer()
	assert.ErrorIs(t, c.RenameEntry("old", "new"), ErrNotFound)
}

func TestRenameDuplicateEntry(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddEntry(&Entry{}, "Rogue One"))
	assert.NoError(t, c.AddEntry(&Entry{}, "Rogue Two"))
	assert.ErrorIs(t, c.RenameEntry("Rogue One", "Rogue Two"), ErrDuplicate)
}

func TestRenameEntry(t *testing.T) {
	c := NewContainer()
	e := NewEntry("bob", "", "")
	assert.NoError(t, c.AddEntry(e, "Rogue One"))

	assert.NoError(t, c.RenameEntry("Rogue One", "Rogue Two"))
	assert.False(t, c.HasEntry("Rogue One"))
	assert.True(t, c.HasEntry("Rogue Two"))

	got, err := c.Entry("Rogue Two")
	assert.NoError(t, err)
	assert.Same(t, e, got)

	assert.NoError(t, c.RemoveEntry("Rogue Two"))
	assert.Equal(t, 0, c.EntryCount())
}

func TestAddAndRemoveEntry(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddEntry(&Entry{}, "~ Rogue-1"))
	assert.Equal(t, 1, c.EntryCount())
	assert.NoError(t, c.RemoveEntry("~ Rogue-1"))
	assert.Equal(t, 0, c.EntryCount())
}

func TestAddDuplicateEntry(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.AddEntry(&Entry{}, "Rogue One"))
	assert.ErrorIs(t, c.AddEntry(&Entry{}, "Rogue One"), ErrDuplicate)
}

func TestContainerAndEntryMayShareName(t *testing.T) {
	// The two namespaces are independent and never cross-checked
	c := NewContainer()
	assert.NoError(t, c.AddContainer(NewContainer(), "Shared"))
	assert.NoError(t, c.AddEntry(&Entry{}, "Shared"))
	assert.True(t, c.HasContainer("Shared"))
	assert.True(t, c.HasEntry("Shared"))
}
