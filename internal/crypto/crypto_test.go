package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	key := DeriveKey([]byte("password"), salt, 1000)

	plaintext := []byte("the password store document")
	sealed, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Failed to seal: %v", err)
	}
	if bytes.Contains(sealed, plaintext) {
		t.Error("Sealed output contains plaintext")
	}

	opened, err := Open(key, sealed)
	if err != nil {
		t.Fatalf("Failed to open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Errorf("Plaintext mismatch: got %q, want %q", opened, plaintext)
	}
}

func TestOpenWrongKey(t *testing.T) {
	salt, _ := NewSalt()
	key := DeriveKey([]byte("password"), salt, 1000)
	wrongKey := DeriveKey([]byte("not the password"), salt, 1000)

	sealed, err := Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Failed to seal: %v", err)
	}

	if _, err := Open(wrongKey, sealed); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed, got %v", err)
	}
}

func TestOpenTamperedCiphertext(t *testing.T) {
	salt, _ := NewSalt()
	key := DeriveKey([]byte("password"), salt, 1000)

	sealed, err := Seal(key, []byte("secret"))
	if err != nil {
		t.Fatalf("Failed to seal: %v", err)
	}
	sealed[len(sealed)-1] ^= 0xff

	if _, err := Open(key, sealed); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("Expected ErrAuthFailed, got %v", err)
	}
}

func TestOpenTruncatedCiphertext(t *testing.T) {
	salt, _ := NewSalt()
	key := DeriveKey([]byte("password"), salt, 1000)

	if _, err := Open(key, []byte("short")); !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("Expected ErrInvalidCiphertext, got %v", err)
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt, _ := NewSalt()

	k1 := DeriveKey([]byte("password"), salt, 1000)
	k2 := DeriveKey([]byte("password"), salt, 1000)
	if !bytes.Equal(k1, k2) {
		t.Error("Same password and salt should derive the same key")
	}

	otherSalt, _ := NewSalt()
	k3 := DeriveKey([]byte("password"), otherSalt, 1000)
	if bytes.Equal(k1, k3) {
		t.Error("Different salts should derive different keys")
	}
}

func TestNewSaltUnique(t *testing.T) {
	s1, err := NewSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	s2, err := NewSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	if len(s1) != SaltSize {
		t.Errorf("Salt size: got %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Error("Consecutive salts should differ")
	}
}

func TestSealNonceUnique(t *testing.T) {
	salt, _ := NewSalt()
	key := DeriveKey([]byte("password"), salt, 1000)

	a, err := Seal(key, []byte("same plaintext"))
	if err != nil {
		t.Fatalf("Failed to seal: %v", err)
	}
	b, err := Seal(key, []byte("same plaintext"))
	if err != nil {
		t.Fatalf("Failed to seal: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("Sealing the same plaintext twice should differ")
	}
}

func TestClearBytes(t *testing.T) {
	b := []byte("sensitive")
	ClearBytes(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("Byte %d not cleared", i)
		}
	}
}
