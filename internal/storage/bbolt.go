// Package storage is the on-disk container for an encrypted store: a bbolt
// file holding the KDF parameters in the clear alongside the sealed
// password checksum and document payload.
package storage

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	configBucket = []byte("config") // KDF params, timestamps, vault ID - unencrypted
	sealedBucket = []byte("sealed") // Encrypted checksum and document
)

// Config keys
var (
	configVersion  = []byte("version")
	configCreated  = []byte("created")
	configModified = []byte("modified")
	configSalt     = []byte("salt")
	configIters    = []byte("iterations")
	configVaultID  = []byte("vault_id")
)

// Storage wraps the bbolt file backing one store.
type Storage struct {
	db *bolt.DB
}

// Open opens or creates a store file.
func Open(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Initialize creates the bucket structure for a new store file.
func (s *Storage) Initialize() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{configBucket, sealedBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}

		config := tx.Bucket(configBucket)
		if err := config.Put(configVersion, []byte("1")); err != nil {
			return err
		}

		now, _ := time.Now().MarshalBinary()
		if err := config.Put(configCreated, now); err != nil {
			return err
		}
		return config.Put(configModified, now)
	})
}

// IsInitialized checks whether the file has been initialized.
func (s *Storage) IsInitialized() (bool, error) {
	var initialized bool
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(configBucket)
		if config != nil && config.Get(configVersion) != nil {
			initialized = true
		}
		return nil
	})
	return initialized, err
}

// SetSalt stores the KDF salt.
func (s *Storage) SetSalt(salt []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(configBucket).Put(configSalt, salt)
	})
}

// GetSalt retrieves the KDF salt.
func (s *Storage) GetSalt() ([]byte, error) {
	var salt []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(configBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		salt = config.Get(configSalt)
		if salt == nil {
			return fmt.Errorf("salt not found")
		}
		// Copy out - the slice is only valid during the transaction
		salt = append([]byte(nil), salt...)
		return nil
	})
	return salt, err
}

// SetIterations stores the KDF iteration count.
func (s *Storage) SetIterations(iterations uint32) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		iters := make([]byte, 4)
		binary.BigEndian.PutUint32(iters, iterations)
		return tx.Bucket(configBucket).Put(configIters, iters)
	})
}

// GetIterations retrieves the KDF iteration count.
func (s *Storage) GetIterations() (uint32, error) {
	var iterations uint32
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(configBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		iters := config.Get(configIters)
		if iters == nil || len(iters) != 4 {
			return fmt.Errorf("iterations not found")
		}
		iterations = binary.BigEndian.Uint32(iters)
		return nil
	})
	return iterations, err
}

// UpdateModified updates the last modified timestamp.
func (s *Storage) UpdateModified() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		now, _ := time.Now().MarshalBinary()
		return tx.Bucket(configBucket).Put(configModified, now)
	})
}

// GetModified retrieves the last modified timestamp.
func (s *Storage) GetModified() (time.Time, error) {
	return s.getTime(configModified)
}

// GetCreated retrieves the creation timestamp.
func (s *Storage) GetCreated() (time.Time, error) {
	return s.getTime(configCreated)
}

func (s *Storage) getTime(key []byte) (time.Time, error) {
	var t time.Time
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(configBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		data := config.Get(key)
		if data == nil {
			return fmt.Errorf("%s not found", key)
		}
		return t.UnmarshalBinary(data)
	})
	return t, err
}

// GetVaultID retrieves the vault ID.
func (s *Storage) GetVaultID() (string, error) {
	var vaultID string
	err := s.db.View(func(tx *bolt.Tx) error {
		config := tx.Bucket(configBucket)
		if config == nil {
			return fmt.Errorf("config bucket not found")
		}
		data := config.Get(configVaultID)
		if data == nil {
			return fmt.Errorf("vault_id not found")
		}
		vaultID = string(data)
		return nil
	})
	return vaultID, err
}

// GetOrCreateVaultID retrieves the existing vault ID or generates a new one.
// The ID keys the OS keyring record for this store.
func (s *Storage) GetOrCreateVaultID() (string, error) {
	vaultID, err := s.GetVaultID()
	if err == nil {
		return vaultID, nil
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate vault ID: %w", err)
	}
	vaultID = hex.EncodeToString(b)

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(configBucket).Put(configVaultID, []byte(vaultID))
	})
	if err != nil {
		return "", err
	}
	return vaultID, nil
}

// PutSealed stores an encrypted payload under key.
func (s *Storage) PutSealed(key string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sealedBucket).Put([]byte(key), data)
	})
}

// GetSealed retrieves an encrypted payload.
func (s *Storage) GetSealed(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		sealed := tx.Bucket(sealedBucket)
		if sealed == nil {
			return fmt.Errorf("sealed bucket not found")
		}
		data = sealed.Get([]byte(key))
		if data == nil {
			return fmt.Errorf("sealed payload %q not found", key)
		}
		// Copy out - the slice is only valid during the transaction
		data = append([]byte(nil), data...)
		return nil
	})
	return data, err
}
