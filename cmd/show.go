package cmd

import (
	"fmt"
)

// Show prints a single entry. The password field is masked unless
// showPassword is set.
func Show(storeFile, path string, showPassword bool) {
	password := GetPasswordOrExit(storeFile, "Enter password: ")
	defer clearPassword(password)

	st := openStoreOrExit(storeFile, password)

	name, entry, err := st.EntryByPath(path)
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Name:     %s\n", name)
	if entry.Username() != "" {
		fmt.Printf("Username: %s\n", entry.Username())
	}
	if entry.Password() != "" {
		if showPassword {
			fmt.Printf("Password: %s\n", entry.Password())
		} else {
			fmt.Printf("Password: ********\n")
		}
	}
	if entry.URL() != "" {
		fmt.Printf("URL:      %s\n", entry.URL())
	}
}
