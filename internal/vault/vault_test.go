package vault

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.cryptex")
	password := []byte("test-password")
	plaintext := []byte("<cryptex><store></store></cryptex>")

	if err := Encrypt(password, plaintext, filename); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	decrypted, err := Decrypt(password, filename)
	if err != nil {
		t.Fatalf("Failed to decrypt: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("Plaintext mismatch: got %q, want %q", decrypted, plaintext)
	}
}

func TestPlaintextNotOnDisk(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.cryptex")
	plaintext := []byte("super-secret-document-content")

	if err := Encrypt([]byte("pw"), plaintext, filename); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if bytes.Contains(raw, plaintext) {
		t.Error("Store file contains the plaintext document")
	}
}

func TestDecryptWrongPassword(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.cryptex")

	if err := Encrypt([]byte("right"), []byte("doc"), filename); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	_, err := Decrypt([]byte("wrong"), filename)
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Expected ErrWrongPassword, got %v", err)
	}
	if errors.Is(err, ErrCorruptVault) {
		t.Error("Wrong password should not report corruption")
	}
}

func TestDecryptMissingFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing.cryptex")

	if _, err := Decrypt([]byte("pw"), filename); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDecryptCorruptFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.cryptex")

	// A valid bbolt file with none of the expected contents
	if err := os.WriteFile(filename, nil, 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Decrypt([]byte("pw"), filename)
	if err == nil {
		t.Fatal("Expected error for corrupt file")
	}
	if errors.Is(err, ErrWrongPassword) {
		t.Error("Corruption should not report a wrong password")
	}
}

func TestEncryptRekeys(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.cryptex")

	if err := Encrypt([]byte("old"), []byte("doc"), filename); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	if err := Encrypt([]byte("new"), []byte("doc"), filename); err != nil {
		t.Fatalf("Failed to re-encrypt: %v", err)
	}

	if _, err := Decrypt([]byte("old"), filename); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Old password should no longer open the file, got %v", err)
	}
	doc, err := Decrypt([]byte("new"), filename)
	if err != nil {
		t.Fatalf("Failed to decrypt with new password: %v", err)
	}
	if string(doc) != "doc" {
		t.Errorf("Document mismatch after rekey: got %q", doc)
	}
}

func TestReadInfo(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.cryptex")

	if err := Encrypt([]byte("pw"), []byte("doc"), filename); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	info, err := ReadInfo(filename)
	if err != nil {
		t.Fatalf("Failed to read info: %v", err)
	}
	if info.VaultID == "" {
		t.Error("Info should carry a vault ID")
	}
	if info.Iterations == 0 {
		t.Error("Info should carry the iteration count")
	}
	if info.Size == 0 {
		t.Error("Info should carry the file size")
	}
	if info.Created.IsZero() || info.Modified.IsZero() {
		t.Error("Info should carry timestamps")
	}
}

func TestVaultIDStable(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "test.cryptex")

	if err := Encrypt([]byte("pw"), []byte("doc"), filename); err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	id, err := VaultID(filename)
	if err != nil {
		t.Fatalf("Failed to get vault ID: %v", err)
	}
	again, err := VaultID(filename)
	if err != nil {
		t.Fatalf("Failed to get vault ID: %v", err)
	}
	if id == "" || id != again {
		t.Errorf("Vault ID should be stable and non-empty: %q vs %q", id, again)
	}
}
