// Package vault is the encryption layer wrapping a serialized store
// document on disk. Encrypt writes an encrypted file; Decrypt reads one
// back, failing on a wrong password or a corrupt file with distinguishable
// errors.
package vault

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cryptexhq/cryptex/internal/crypto"
	"github.com/cryptexhq/cryptex/internal/storage"
)

const (
	checksumKey = "checksum"
	documentKey = "document"

	passwordCheckString = "cryptex-password-check"
)

var (
	// ErrWrongPassword is returned by Decrypt when the password-check
	// checksum does not verify under the derived key.
	ErrWrongPassword = errors.New("wrong password")

	// ErrCorruptVault is returned by Decrypt when the file is missing
	// required data or the payload fails to open even though the
	// password verified.
	ErrCorruptVault = errors.New("corrupt store file")
)

// Encrypt writes plaintext to filename as an encrypted store file. Every
// call derives a fresh salt and rewrites the password checksum, so a save
// under a different password is a complete rekey.
func Encrypt(password, plaintext []byte, filename string) error {
	db, err := storage.Open(filename)
	if err != nil {
		return err
	}
	defer db.Close()

	initialized, err := db.IsInitialized()
	if err != nil {
		return err
	}
	if !initialized {
		if err := db.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize store file: %w", err)
		}
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return err
	}
	if err := db.SetSalt(salt); err != nil {
		return fmt.Errorf("failed to store salt: %w", err)
	}
	if err := db.SetIterations(crypto.DefaultIters); err != nil {
		return fmt.Errorf("failed to store iterations: %w", err)
	}

	key := crypto.DeriveKey(password, salt, crypto.DefaultIters)
	defer crypto.ClearBytes(key)

	sealedCheck, err := crypto.Seal(key, []byte(passwordChecksum()))
	if err != nil {
		return fmt.Errorf("failed to encrypt checksum: %w", err)
	}
	if err := db.PutSealed(checksumKey, sealedCheck); err != nil {
		return fmt.Errorf("failed to store checksum: %w", err)
	}

	sealedDoc, err := crypto.Seal(key, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt document: %w", err)
	}
	if err := db.PutSealed(documentKey, sealedDoc); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}

	return db.UpdateModified()
}

// Decrypt reads the encrypted store file at filename and returns the
// plaintext document. The password is verified against the sealed checksum
// before the payload is touched, so ErrWrongPassword and ErrCorruptVault
// are distinguishable with errors.Is.
func Decrypt(password []byte, filename string) ([]byte, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("store file %s: %w", filename, err)
	}

	db, err := storage.Open(filename)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	salt, err := db.GetSalt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}
	iterations, err := db.GetIterations()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}

	key := crypto.DeriveKey(password, salt, int(iterations))
	defer crypto.ClearBytes(key)

	sealedCheck, err := db.GetSealed(checksumKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}
	check, err := crypto.Open(key, sealedCheck)
	if err != nil {
		return nil, ErrWrongPassword
	}
	if !crypto.ConstantTimeCompare(check, []byte(passwordChecksum())) {
		return nil, ErrWrongPassword
	}

	sealedDoc, err := db.GetSealed(documentKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}
	document, err := crypto.Open(key, sealedDoc)
	if err != nil {
		// Password verified but the payload will not open
		return nil, fmt.Errorf("%w: document failed authentication", ErrCorruptVault)
	}
	return document, nil
}

// Info describes a store file's unencrypted parameters, readable without a
// password.
type Info struct {
	VaultID    string
	Iterations uint32
	Created    time.Time
	Modified   time.Time
	Size       int64
}

// ReadInfo returns the unencrypted parameters of the store file.
func ReadInfo(filename string) (*Info, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(filename)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	info := &Info{Size: fi.Size()}
	if info.VaultID, err = db.GetOrCreateVaultID(); err != nil {
		return nil, err
	}
	if info.Iterations, err = db.GetIterations(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}
	// Timestamps are informational; a missing value is not fatal
	info.Created, _ = db.GetCreated()
	info.Modified, _ = db.GetModified()
	return info, nil
}

// VaultID returns the store file's stable ID, creating one on demand.
func VaultID(filename string) (string, error) {
	if _, err := os.Stat(filename); err != nil {
		return "", err
	}
	db, err := storage.Open(filename)
	if err != nil {
		return "", err
	}
	defer db.Close()
	return db.GetOrCreateVaultID()
}

func passwordChecksum() string {
	sum := sha256.Sum256([]byte(passwordCheckString))
	return hex.EncodeToString(sum[:])
}
