package cmd

import (
	"fmt"

	"github.com/cryptexhq/cryptex/internal/store"
)

// EditOptions carries the fields to change on an existing entry. A nil
// pointer leaves the field as it is; a pointer to the empty string clears
// it.
type EditOptions struct {
	Name     *string
	Username *string
	Password *string
	URL      *string
}

// Edit updates the entry at path in place, renaming it first when a new
// name is given.
func Edit(storeFile, path string, opts EditOptions) {
	password := GetPasswordOrExit(storeFile, "Enter password: ")
	defer clearPassword(password)

	st := openStoreOrExit(storeFile, password)

	currentName, current, err := st.EntryByPath(path)
	if err != nil {
		HandleError(err)
	}

	updated := store.NewEntry(current.Username(), current.Password(), current.URL())
	if opts.Username != nil {
		updated.SetUsername(*opts.Username)
	}
	if opts.Password != nil {
		updated.SetPassword(*opts.Password)
	}
	if opts.URL != nil {
		updated.SetURL(*opts.URL)
	}

	updatedName := currentName
	if opts.Name != nil {
		updatedName = *opts.Name
	}

	if err := st.UpdateEntry(path, updatedName, updated); err != nil {
		HandleError(err)
	}
	saveOrExit(st, password, storeFile)

	fmt.Printf("Updated entry %s\n", updatedName)
}
