package cmd

import (
	"fmt"
	"os"

	"github.com/cryptexhq/cryptex/internal/keyring"
	"github.com/cryptexhq/cryptex/internal/vault"
)

// KeyringSave verifies the passphrase and caches it in the OS keyring.
func KeyringSave(storeFile string) {
	password, err := ReadPassword("Enter password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer clearPassword(password)

	// Verify before caching; a bad passphrase in the keyring would turn
	// every later prompt-free open into a confusing failure
	if _, err := vault.Decrypt(password, storeFile); err != nil {
		HandleError(err)
	}

	vaultID, err := vault.VaultID(storeFile)
	if err != nil {
		HandleError(err)
	}

	if err := keyring.SavePassword(vaultID, string(password)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save to keyring: %s\n", err)
		os.Exit(1)
	}
	fmt.Println("Password saved to keyring")
}

// KeyringDelete removes the cached passphrase from the OS keyring.
func KeyringDelete(storeFile string) {
	vaultID, err := vault.VaultID(storeFile)
	if err != nil {
		fmt.Println("No password stored in keyring")
		return
	}
	if err := keyring.DeletePassword(vaultID); err != nil {
		fmt.Println("No password stored in keyring")
		return
	}
	fmt.Println("Password removed from keyring")
}

// KeyringStatus reports whether a passphrase is cached for this store.
func KeyringStatus(storeFile string) {
	vaultID, err := vault.VaultID(storeFile)
	if err != nil {
		fmt.Println("Password: not stored")
		return
	}
	if keyring.HasPassword(vaultID) {
		fmt.Println("Password: stored in keyring")
	} else {
		fmt.Println("Password: not stored")
	}
}
