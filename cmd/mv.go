package cmd

import (
	"fmt"

	"github.com/cryptexhq/cryptex/internal/pathutil"
)

// Move renames the entry at path to newName within its parent container,
// or a container when asContainer is set. Moves across containers are not
// supported.
func Move(storeFile, path, newName string, asContainer bool) {
	parent, oldName := pathutil.Split(path)

	password := GetPasswordOrExit(storeFile, "Enter password: ")
	defer clearPassword(password)

	st := openStoreOrExit(storeFile, password)

	dest, err := st.ContainerByPath(parent)
	if err != nil {
		HandleError(err)
	}

	if asContainer {
		if err := dest.RenameContainer(oldName, newName); err != nil {
			HandleError(err)
		}
	} else {
		if err := dest.RenameEntry(oldName, newName); err != nil {
			HandleError(err)
		}
	}
	saveOrExit(st, password, storeFile)

	fmt.Printf("Renamed %s to %s\n", pathutil.Simplify(path), joinPath(parent, newName))
}
