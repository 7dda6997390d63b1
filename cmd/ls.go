package cmd

import (
	"fmt"
	"maps"
	"slices"
)

// List prints the containers and entries at path, containers first, each
// group sorted by name.
func List(storeFile, path string) {
	password := GetPasswordOrExit(storeFile, "Enter password: ")
	defer clearPassword(password)

	st := openStoreOrExit(storeFile, password)

	containers, err := st.ContainersByPath(path)
	if err != nil {
		HandleError(err)
	}
	entries, err := st.EntriesByPath(path)
	if err != nil {
		HandleError(err)
	}

	if len(containers) == 0 && len(entries) == 0 {
		fmt.Println("(empty)")
		return
	}

	for _, name := range slices.Sorted(maps.Keys(containers)) {
		fmt.Printf("%s/\n", name)
	}
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		fmt.Println(name)
	}
}
