package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestService(t *testing.T) *Service {
	t.Helper()
	return newTestServiceWithExpiration(t, 15*time.Minute)
}

func newTestServiceWithExpiration(t *testing.T, expiration time.Duration) *Service {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	return NewTestService(privateKey, "test-issuer", expiration)
}

// ============================================================================
// Claims Tests
// ============================================================================

func TestClaims_IsAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleUser, false},
		{"", false},
		{"Admin", false},
	}

	for _, tt := range tests {
		c := Claims{Role: tt.role}
		if got := c.IsAdmin(); got != tt.want {
			t.Errorf("IsAdmin() with role %q = %v, want %v", tt.role, got, tt.want)
		}
	}
}

// ============================================================================
// Service.Sign() Tests
// ============================================================================

func TestSign_ValidClaims_ReturnsToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{Username: "u1", Role: RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("expected 3 token parts, got %d", len(parts))
	}
}

func TestSign_NilPrivateKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "test-issuer"}

	_, err := svc.Sign(Claims{Username: "u1"})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestSign_SetsStandardClaims(t *testing.T) {
	t.Parallel()
	svc := newTestServiceWithExpiration(t, 30*time.Minute)

	before := time.Now().Add(-time.Second)
	token, err := svc.Sign(Claims{Username: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer 'test-issuer', got %q", claims.Issuer)
	}
	if claims.IssuedAt == nil || claims.IssuedAt.Before(before) {
		t.Errorf("expected issued-at to be set to now, got %v", claims.IssuedAt)
	}
	if claims.ExpiresAt == nil {
		t.Fatal("expected expiration to be set")
	}
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime < 29*time.Minute || lifetime > 31*time.Minute {
		t.Errorf("expected ~30m lifetime, got %v", lifetime)
	}
}

func TestSign_PreservesCustomExpiration(t *testing.T) {
	t.Parallel()
	svc := newTestServiceWithExpiration(t, 30*time.Minute)

	custom := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	claims := Claims{Username: "u1"}
	claims.ExpiresAt = gojwt.NewNumericDate(custom)

	token, err := svc.Sign(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.ExpiresAt.Time.Equal(custom) {
		t.Errorf("expected expiration %v, got %v", custom, got.ExpiresAt.Time)
	}
}

// ============================================================================
// Service.Validate() Tests
// ============================================================================

func TestValidate_RoundTripsCustomClaims(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	in := Claims{Username: "u1", Role: RoleAdmin}
	in.Subject = "u1"
	token, err := svc.Sign(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Username != "u1" {
		t.Errorf("expected username 'u1', got %q", claims.Username)
	}
	if claims.Subject != "u1" {
		t.Errorf("expected subject 'u1', got %q", claims.Subject)
	}
	if !claims.IsAdmin() {
		t.Error("expected admin role to survive the round trip")
	}
}

func TestValidate_NilPublicKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "test-issuer"}

	_, err := svc.Validate("a.b.c")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestValidate_Malformed_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	for _, token := range []string{"", "abc", "a.b", "a.b.c.d", "!!!.###.$$$"} {
		_, err := svc.Validate(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestValidate_OtherKey_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	signer := newTestService(t)
	verifier := newTestService(t)

	token, err := signer.Sign(Claims{Username: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_TamperedClaims_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{Username: "u1", Role: RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Swap in claims from a different token signed with another key
	other := newTestService(t)
	forged, _ := other.Sign(Claims{Username: "u1", Role: RoleAdmin})
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = svc.Validate(tampered)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_ExpiredToken_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	claims := Claims{Username: "u1"}
	claims.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Hour))
	token, err := svc.Sign(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongIssuer_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	signer := NewTestService(privateKey, "someone-else", time.Hour)
	verifier := NewTestService(privateKey, "test-issuer", time.Hour)

	token, err := signer.Sign(Claims{Username: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_HS256_IsRejected(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	claims := Claims{Username: "u1", Role: RoleAdmin}
	claims.Issuer = "test-issuer"
	claims.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, ErrInvalidToken) && !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected HS256 token to be rejected, got %v", err)
	}
}

// ============================================================================
// Key Loading Tests
// ============================================================================

func TestNewService_LoadsGeneratedKeyPair(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")
	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}

	signer, err := NewService(Config{PrivateKeyPath: privPath, Issuer: "jobly", ExpirationMins: 5})
	if err != nil {
		t.Fatalf("NewService(private) failed: %v", err)
	}
	verifier, err := NewService(Config{PublicKeyPath: pubPath, Issuer: "jobly"})
	if err != nil {
		t.Fatalf("NewService(public) failed: %v", err)
	}

	token, err := signer.Sign(Claims{Username: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.Validate(token); err != nil {
		t.Errorf("expected token to validate with the public key, got %v", err)
	}

	if _, err := verifier.Sign(Claims{}); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("verification-only service should not sign, got %v", err)
	}
	if got := signer.GetExpiration(); got != 5*time.Minute {
		t.Errorf("expected 5m expiration, got %v", got)
	}
}

func TestNewService_BadKeyFile_ReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbage.pem")
	if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewService(Config{PrivateKeyPath: path}); err == nil {
		t.Error("expected error for invalid private key file")
	}
	if _, err := NewService(Config{PublicKeyPath: path}); err == nil {
		t.Error("expected error for invalid public key file")
	}
	if _, err := NewService(Config{PrivateKeyPath: filepath.Join(t.TempDir(), "missing.pem")}); err == nil {
		t.Error("expected error for missing key file")
	}
}
