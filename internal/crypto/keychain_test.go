package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if len(s2) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s2))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	svc := NewKeyChainService()
	salt := []byte("0123456789abcdef")

	k1 := svc.DeriveKey("password", salt)
	k2 := svc.DeriveKey("password", salt)

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("expected same password and salt to derive the same key")
	}
}

func TestDeriveKey_DifferentInputsDifferentKeys(t *testing.T) {
	svc := NewKeyChainService()
	salt := []byte("0123456789abcdef")
	otherSalt := []byte("fedcba9876543210")

	base := svc.DeriveKey("password", salt)

	if bytes.Equal(base, svc.DeriveKey("other-password", salt)) {
		t.Fatal("different passwords derived the same key")
	}
	if bytes.Equal(base, svc.DeriveKey("password", otherSalt)) {
		t.Fatal("different salts derived the same key")
	}
}

func TestEncryptDecryptToken_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveKey("password", []byte("0123456789abcdef"))

	const token = "header.payload.signature"

	blob, err := svc.EncryptToken(token, key)
	if err != nil {
		t.Fatalf("EncryptToken error: %v", err)
	}
	if strings.Contains(blob, token) {
		t.Fatal("encrypted blob contains the plaintext token")
	}

	got, err := svc.DecryptToken(blob, key)
	if err != nil {
		t.Fatalf("DecryptToken error: %v", err)
	}
	if got != token {
		t.Fatalf("DecryptToken = %q, want %q", got, token)
	}
}

func TestEncryptToken_NonDeterministic(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveKey("password", []byte("0123456789abcdef"))

	b1, err := svc.EncryptToken("token", key)
	if err != nil {
		t.Fatalf("EncryptToken error: %v", err)
	}
	b2, err := svc.EncryptToken("token", key)
	if err != nil {
		t.Fatalf("EncryptToken error: %v", err)
	}

	// random nonce must make every blob unique
	if b1 == b2 {
		t.Fatal("expected two encryptions of the same token to differ")
	}
}

func TestDecryptToken_WrongKey(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveKey("password", []byte("0123456789abcdef"))
	wrongKey := svc.DeriveKey("wrong-password", []byte("0123456789abcdef"))

	blob, err := svc.EncryptToken("token", key)
	if err != nil {
		t.Fatalf("EncryptToken error: %v", err)
	}

	if _, err := svc.DecryptToken(blob, wrongKey); err == nil {
		t.Fatal("expected authentication error with a wrong key, got nil")
	}
}

func TestDecryptToken_CorruptedInput(t *testing.T) {
	svc := NewKeyChainService()
	key := svc.DeriveKey("password", []byte("0123456789abcdef"))

	if _, err := svc.DecryptToken("not-base64!!!", key); err == nil {
		t.Fatal("expected base64 decode error, got nil")
	}

	if _, err := svc.DecryptToken("c2hvcnQ=", key); err == nil {
		t.Fatal("expected short-ciphertext error, got nil")
	}
}
