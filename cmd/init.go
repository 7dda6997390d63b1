package cmd

import (
	"fmt"
	"os"

	"github.com/cryptexhq/cryptex/internal/store"
)

// Init creates a new encrypted store file.
func Init(storeFile string) {
	if _, err := os.Stat(storeFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: store already exists at %s\n", storeFile)
		fmt.Fprintf(os.Stderr, "Use 'cryptex status' to see its state\n")
		os.Exit(1)
	}

	password, err := getPasswordForInit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer clearPassword(password)

	// Opening a nonexistent store bootstraps and persists an empty one
	if _, err := store.Open(password, storeFile); err != nil {
		HandleError(err)
	}

	fmt.Printf("Initialized empty store at %s\n", storeFile)
}
