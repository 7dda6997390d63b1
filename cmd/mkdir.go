package cmd

import (
	"fmt"

	"github.com/cryptexhq/cryptex/internal/pathutil"
	"github.com/cryptexhq/cryptex/internal/store"
)

// Mkdir creates a new container at path and saves the store.
func Mkdir(storeFile, path string) {
	parent, name := pathutil.Split(path)

	password := GetPasswordOrExit(storeFile, "Enter password: ")
	defer clearPassword(password)

	st := openStoreOrExit(storeFile, password)

	if err := st.AddContainer(store.NewContainer(), name, parent); err != nil {
		HandleError(err)
	}
	saveOrExit(st, password, storeFile)

	fmt.Printf("Created container %s\n", pathutil.Simplify(path))
}
