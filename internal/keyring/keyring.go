// Package keyring caches the store passphrase in the OS keyring, keyed by
// the store file's vault ID.
package keyring

import (
	"github.com/zalando/go-keyring"
)

const serviceName = "cryptex"

// SavePassword stores a passphrase in the OS keyring.
func SavePassword(vaultID string, password string) error {
	return keyring.Set(serviceName, vaultID, password)
}

// GetPassword retrieves a passphrase from the OS keyring.
func GetPassword(vaultID string) (string, error) {
	return keyring.Get(serviceName, vaultID)
}

// DeletePassword removes a passphrase from the OS keyring.
func DeletePassword(vaultID string) error {
	return keyring.Delete(serviceName, vaultID)
}

// HasPassword checks whether a passphrase is stored for the vault ID.
func HasPassword(vaultID string) bool {
	_, err := keyring.Get(serviceName, vaultID)
	return err == nil
}
