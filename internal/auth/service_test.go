package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"procwatch/internal/domain"
)

const testSecret = "test-secret"

func hashPassword(t *testing.T, pw string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestService_Enabled(t *testing.T) {
	tests := []struct {
		name   string
		hash   string
		secret string
		want   bool
	}{
		{"configured", "hash", testSecret, true},
		{"no secret", "hash", "", false},
		{"no hash", "", testSecret, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService("admin", tt.hash, tt.secret, time.Hour)
			if got := svc.Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	svc := NewService("admin", hashPassword(t, "correct-horse"), testSecret, time.Hour)

	tests := []struct {
		name    string
		req     domain.LoginRequest
		wantErr error
	}{
		{"valid", domain.LoginRequest{Username: "admin", Password: "correct-horse"}, nil},
		{"wrong password", domain.LoginRequest{Username: "admin", Password: "battery-staple"}, domain.ErrInvalidCredentials},
		{"wrong user", domain.LoginRequest{Username: "root", Password: "correct-horse"}, domain.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			if resp.AccessToken == "" {
				t.Fatal("Login() returned an empty token")
			}
			if time.Until(resp.ExpiresAt) <= 0 {
				t.Errorf("ExpiresAt = %v, want in the future", resp.ExpiresAt)
			}

			claims, err := svc.Verify(resp.AccessToken)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if claims["sub"] != "admin" {
				t.Errorf("sub = %v, want admin", claims["sub"])
			}
		})
	}
}

func TestService_LoginDisabled(t *testing.T) {
	svc := NewService("admin", "", "", time.Hour)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "whatever1"})
	if !errors.Is(err, domain.ErrAuthDisabled) {
		t.Errorf("Login() error = %v, want ErrAuthDisabled", err)
	}
	if _, err := svc.Verify("token"); !errors.Is(err, domain.ErrAuthDisabled) {
		t.Errorf("Verify() error = %v, want ErrAuthDisabled", err)
	}
}

func TestService_VerifyRejects(t *testing.T) {
	svc := NewService("admin", hashPassword(t, "correct-horse"), testSecret, time.Hour)

	sign := func(secret string, exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin", "exp": exp.Unix()})
		s, err := tok.SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", sign("other-secret", time.Now().Add(time.Hour))},
		{"expired", sign(testSecret, time.Now().Add(-time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); err == nil {
				t.Error("Verify() error = nil, want error")
			}
		})
	}
}
