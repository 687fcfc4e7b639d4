package service

import (
	"strings"
	"testing"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret" || hash == "" {
		t.Fatalf("expected derived hash, got %q", hash)
	}
	if !strings.HasPrefix(hash, "$2a$10$") {
		t.Fatalf("expected bcrypt cost 10 hash, got %q", hash)
	}

	if !hasher.Verify("secret", hash) {
		t.Fatalf("expected verification success")
	}
	if hasher.Verify("wrong", hash) {
		t.Fatalf("expected verification failure for wrong password")
	}
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected salted hashes to differ")
	}
}
