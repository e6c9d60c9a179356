package util

import (
	"net/http"
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	username, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %s", username)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("alice", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT("alice", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer abc.def.ghi", "abc.def.ghi"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
		{"Bearer a b", ""},
	}

	for _, c := range cases {
		r, _ := http.NewRequest(http.MethodGet, "/", nil)
		if c.header != "" {
			r.Header.Set("Authorization", c.header)
		}
		if got := ExtractToken(r); got != c.want {
			t.Fatalf("header %q: expected %q, got %q", c.header, c.want, got)
		}
	}
}

func TestCheckPasswordEmptyHashNeverMatches(t *testing.T) {
	if CheckPassword("", "") {
		t.Fatal("empty hash must not match")
	}
	if CheckPassword("secret", "") {
		t.Fatal("empty hash must not match any password")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword("hunter2", hash) {
		t.Fatal("expected password to verify")
	}
	if CheckPassword("hunter3", hash) {
		t.Fatal("wrong password must not verify")
	}
}
