package cmd

import (
	"fmt"

	"github.com/cryptexhq/cryptex/internal/pathutil"
)

// Remove deletes the entry at path, or the container and its whole subtree
// when asContainer is set. The flag disambiguates when a container and an
// entry share the final name.
func Remove(storeFile, path string, asContainer bool) {
	parent, name := pathutil.Split(path)

	password := GetPasswordOrExit(storeFile, "Enter password: ")
	defer clearPassword(password)

	st := openStoreOrExit(storeFile, password)

	dest, err := st.ContainerByPath(parent)
	if err != nil {
		HandleError(err)
	}

	if asContainer {
		if err := dest.RemoveContainer(name); err != nil {
			HandleError(err)
		}
	} else {
		if err := dest.RemoveEntry(name); err != nil {
			HandleError(err)
		}
	}
	saveOrExit(st, password, storeFile)

	fmt.Printf("Removed %s\n", pathutil.Simplify(path))
}
