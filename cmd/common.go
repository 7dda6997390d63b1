package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cryptexhq/cryptex/internal/crypto"
	"github.com/cryptexhq/cryptex/internal/keyring"
	"github.com/cryptexhq/cryptex/internal/store"
	"github.com/cryptexhq/cryptex/internal/vault"
)

// DefaultStoreFile resolves the store file path: $CRYPTEX_STORE if set,
// otherwise ~/.cryptex.
func DefaultStoreFile() string {
	if path := os.Getenv("CRYPTEX_STORE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cryptex"
	}
	return filepath.Join(home, ".cryptex")
}

// GetPassword retrieves the passphrase: $CRYPTEX_PASSWORD first, then the
// OS keyring (when the store file exists and has a cached passphrase),
// then an interactive prompt. The caller clears the returned bytes with
// crypto.ClearBytes.
func GetPassword(storeFile, prompt string) ([]byte, error) {
	if password := getPasswordFromEnv(); password != nil {
		return password, nil
	}

	if _, err := os.Stat(storeFile); err == nil {
		if vaultID, err := vault.VaultID(storeFile); err == nil {
			if cached, err := keyring.GetPassword(vaultID); err == nil {
				return []byte(cached), nil
			}
		}
	}

	password, err := ReadPassword(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// GetPasswordOrExit is like GetPassword but exits on error.
func GetPasswordOrExit(storeFile, prompt string) []byte {
	password, err := GetPassword(storeFile, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return password
}

// openStoreOrExit opens the store and exits with a consistent message when
// the store cannot be used, including the logged-and-nil outcome of a
// document that decrypted but did not parse.
func openStoreOrExit(storeFile string, password []byte) *store.Store {
	if _, err := os.Stat(storeFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: no store at %s\n", storeFile)
		fmt.Fprintf(os.Stderr, "Run 'cryptex init' first\n")
		os.Exit(1)
	}
	st, err := store.Open(password, storeFile)
	if err != nil {
		HandleError(err)
	}
	if st == nil {
		fmt.Fprintf(os.Stderr, "Error: store at %s could not be opened\n", storeFile)
		os.Exit(1)
	}
	return st
}

// saveOrExit persists the store, exiting on failure.
func saveOrExit(st *store.Store, password []byte, storeFile string) {
	if err := st.Save(password, storeFile); err != nil {
		HandleError(err)
	}
}

// HandleError prints a consistent message for common errors and exits.
func HandleError(err error) {
	switch {
	case errors.Is(err, vault.ErrWrongPassword):
		fmt.Fprintf(os.Stderr, "Error: wrong password\n")
	case errors.Is(err, vault.ErrCorruptVault):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	case errors.Is(err, store.ErrDuplicate):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	case errors.Is(err, store.ErrNaughtyCharacter):
		fmt.Fprintf(os.Stderr, "Error: %s (the characters ' \\ / are not allowed)\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}

// clearPassword is a defer-friendly wrapper around crypto.ClearBytes.
func clearPassword(password []byte) {
	crypto.ClearBytes(password)
}
