package cmd

import (
	"fmt"
	"os"

	"github.com/cryptexhq/cryptex/internal/pwgen"
	"github.com/cryptexhq/cryptex/internal/store"
)

// AddOptions carries the field values for a new entry.
type AddOptions struct {
	Username string
	Password string
	URL      string
	Generate bool
	GenOpts  pwgen.Options
}

// Add creates a new entry named name in the container at path and saves
// the store.
func Add(storeFile, path, name string, opts AddOptions) {
	if opts.Generate && opts.Password != "" {
		fmt.Fprintf(os.Stderr, "Error: --password and --generate are mutually exclusive\n")
		os.Exit(1)
	}

	entryPassword := opts.Password
	if opts.Generate {
		generated, err := pwgen.Generate(opts.GenOpts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		entryPassword = generated
	}

	password := GetPasswordOrExit(storeFile, "Enter password: ")
	defer clearPassword(password)

	st := openStoreOrExit(storeFile, password)

	entry := store.NewEntry(opts.Username, entryPassword, opts.URL)
	if err := st.AddEntry(entry, name, path); err != nil {
		HandleError(err)
	}
	saveOrExit(st, password, storeFile)

	fmt.Printf("Added entry %s\n", joinPath(path, name))
	if opts.Generate {
		fmt.Printf("Generated password: %s\n", entryPassword)
	}
}

func joinPath(path, name string) string {
	if path == "/" || path == "" {
		return "/" + name
	}
	return path + "/" + name
}
