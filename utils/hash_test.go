package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret12")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "secret12" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("secret12", hash) {
		t.Fatal("correct password did not verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password verified")
	}
}

func TestCheckPasswordHashRejectsInvalidHash(t *testing.T) {
	if CheckPasswordHash("secret12", "not-a-bcrypt-hash") {
		t.Fatal("invalid hash verified")
	}
}
