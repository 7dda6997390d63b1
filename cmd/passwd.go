package cmd

import (
	"fmt"
)

// Passwd re-encrypts the store under a new passphrase. Saving re-derives
// the salt, so this is a complete rekey of the file.
func Passwd(storeFile string) {
	current := GetPasswordOrExit(storeFile, "Enter current password: ")
	defer clearPassword(current)

	st := openStoreOrExit(storeFile, current)

	newPassword, err := readNewPassword()
	if err != nil {
		HandleError(err)
	}
	defer clearPassword(newPassword)

	saveOrExit(st, newPassword, storeFile)

	fmt.Println("Password changed")
}
