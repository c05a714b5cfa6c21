package service_test

import (
	"context"
	"testing"

	"github.com/qtcyy/practice-system/internal/apperr"
)

func TestRegisterAndLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	user, err := h.users.Register(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected username alice, got %q", user.Username)
	}

	resp, err := h.users.Login(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.UserID != user.Id.String() {
		t.Fatalf("expected user id %s, got %s", user.Id, resp.UserID)
	}

	claims, err := h.tokens.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("parsing issued token: %v", err)
	}
	if claims.UserID != user.Id || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.users.Register(ctx, "bob", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := h.users.Register(ctx, "bob", "othersecret")
	be, ok := apperr.As(err)
	if !ok || be.Code != 400 {
		t.Fatalf("expected a 400 business error, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.users.Register(ctx, "carol", "secret123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassword := h.users.Login(ctx, "carol", "wrong")
	_, noSuchUser := h.users.Login(ctx, "nobody", "whatever")

	if wrongPassword == nil || noSuchUser == nil {
		t.Fatal("expected both logins to fail")
	}
	if wrongPassword.Error() != noSuchUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword, noSuchUser)
	}
}
