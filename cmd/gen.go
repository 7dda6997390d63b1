package cmd

import (
	"fmt"
	"os"

	"github.com/cryptexhq/cryptex/internal/pwgen"
)

// Gen prints a freshly generated password without touching the store.
func Gen(opts pwgen.Options) {
	password, err := pwgen.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(password)
}
