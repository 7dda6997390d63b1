package cmd

import (
	"fmt"
	"os"
	"syscall"

	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/term"

	"github.com/cryptexhq/cryptex/internal/crypto"
)

// minEntropy is the acceptance floor for master passphrases at init and
// passwd time.
const minEntropy = 60

// ReadPassword reads a password from the terminal without echoing.
func ReadPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// ReadPasswordConfirm reads a password twice and ensures both match.
func ReadPasswordConfirm() ([]byte, error) {
	password1, err := ReadPassword("Enter password: ")
	if err != nil {
		return nil, err
	}
	defer crypto.ClearBytes(password1)

	password2, err := ReadPassword("Confirm password: ")
	if err != nil {
		return nil, err
	}
	defer crypto.ClearBytes(password2)

	if !crypto.ConstantTimeCompare(password1, password2) {
		return nil, fmt.Errorf("passwords do not match")
	}

	result := make([]byte, len(password1))
	copy(result, password1)
	return result, nil
}

// getPasswordFromEnv reads the passphrase from CRYPTEX_PASSWORD. Returns a
// copy so clearing the result cannot corrupt the environment value.
func getPasswordFromEnv() []byte {
	password := os.Getenv("CRYPTEX_PASSWORD")
	if password == "" {
		return nil
	}
	result := make([]byte, len(password))
	copy(result, password)
	return result
}

// getPasswordForInit reads the new master passphrase: environment variable
// first, then a confirmed prompt. The entropy check applies either way.
func getPasswordForInit() ([]byte, error) {
	if password := getPasswordFromEnv(); password != nil {
		if err := checkEntropy(password); err != nil {
			crypto.ClearBytes(password)
			return nil, err
		}
		return password, nil
	}
	return readNewPassword()
}

// readNewPassword prompts for a confirmed, entropy-checked passphrase.
func readNewPassword() ([]byte, error) {
	password, err := ReadPasswordConfirm()
	if err != nil {
		return nil, err
	}
	if err := checkEntropy(password); err != nil {
		crypto.ClearBytes(password)
		return nil, err
	}
	return password, nil
}

func checkEntropy(password []byte) error {
	if err := passwordvalidator.Validate(string(password), minEntropy); err != nil {
		return fmt.Errorf("password too weak: %w", err)
	}
	return nil
}
