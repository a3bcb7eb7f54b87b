package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/vestia-market/vestia-cli/internal/api"
	"github.com/vestia-market/vestia-cli/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, server *httptest.Server) (*Store, string) {
	t.Helper()

	tokenFile := filepath.Join(t.TempDir(), "token")
	store, err := NewStore(NewFileTokenStore(tokenFile), discardLogger())
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	client := api.NewClient(server.URL, server.Client(), store, discardLogger())
	client.SetUnauthorizedHook(store.Expire)
	store.SetClient(client)
	return store, tokenFile
}

func validRegistration() Registration {
	return Registration{
		FullName:        "Ana Ruiz",
		Email:           "ana@example.com",
		Phone:           "3001234567",
		Address:         "Bogotá",
		Password:        "abc123",
		PasswordConfirm: "abc123",
	}
}

func TestStore_Login(t *testing.T) {
	t.Run("transitions to authenticated and persists the token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/login" {
				t.Errorf("expected /auth/login, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","full_name":"Ana Ruiz","email":"ana@example.com"}}`))
		}))
		defer server.Close()

		store, tokenFile := newTestStore(t, server)

		user, err := store.Login(context.Background(), "ana@example.com", "abc123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.FullName != "Ana Ruiz" {
			t.Errorf("unexpected user: %+v", user)
		}
		if !store.Authenticated() {
			t.Error("expected authenticated state")
		}
		if store.Token() != "tok-1" {
			t.Errorf("expected tok-1, got %q", store.Token())
		}

		persisted, _ := os.ReadFile(tokenFile)
		if string(persisted) != "tok-1" {
			t.Errorf("expected persisted token, got %q", persisted)
		}
	})

	t.Run("stays anonymous on remote failure and keeps the message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
		}))
		defer server.Close()

		store, _ := newTestStore(t, server)

		_, err := store.Login(context.Background(), "ana@example.com", "wrong")
		if err == nil {
			t.Fatal("expected error")
		}
		if api.UserMessage(err) != "invalid credentials" {
			t.Errorf("expected remote message unchanged, got %q", api.UserMessage(err))
		}
		if store.Authenticated() {
			t.Error("expected anonymous state after failed login")
		}
	})

	t.Run("reads a persisted token at construction", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "token")
		if err := os.WriteFile(tokenFile, []byte("tok-old"), 0o600); err != nil {
			t.Fatal(err)
		}

		store, err := NewStore(NewFileTokenStore(tokenFile), discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Token() != "tok-old" {
			t.Errorf("expected tok-old, got %q", store.Token())
		}
	})
}

func TestStore_Register(t *testing.T) {
	t.Run("rejects a five character password without a network call", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		store, _ := newTestStore(t, server)

		reg := validRegistration()
		reg.Password = "abc12"
		reg.PasswordConfirm = "abc12"

		_, err := store.Register(context.Background(), reg)
		if !domain.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no network call, got %d", calls)
		}
	})

	t.Run("rejects mismatched confirmation without a network call", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer server.Close()

		store, _ := newTestStore(t, server)

		reg := validRegistration()
		reg.PasswordConfirm = "different"

		_, err := store.Register(context.Background(), reg)
		if !domain.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no network call, got %d", calls)
		}
	})

	t.Run("six character password reaches the network", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if r.URL.Path != "/auth/register" {
				t.Errorf("expected /auth/register, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"tok-2","user":{"id":"u2","full_name":"Ana Ruiz","email":"ana@example.com"}}`))
		}))
		defer server.Close()

		store, _ := newTestStore(t, server)

		if _, err := store.Register(context.Background(), validRegistration()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected one network call, got %d", calls)
		}
		if !store.Authenticated() {
			t.Error("expected authenticated state after register")
		}
	})
}

func TestStore_Logout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-3","user":{"id":"u1","full_name":"Ana","email":"a@b.c"}}`))
	}))
	defer server.Close()

	store, tokenFile := newTestStore(t, server)

	if _, err := store.Login(context.Background(), "a@b.c", "abc123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.Logout()

	if store.Authenticated() {
		t.Error("expected anonymous state after logout")
	}
	if store.User() != nil {
		t.Error("expected no user after logout")
	}
	if _, err := os.Stat(tokenFile); !os.IsNotExist(err) {
		t.Error("expected token file removed")
	}
}

func TestStore_ExpireOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	tokenFile := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(tokenFile, []byte("tok-stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := NewStore(NewFileTokenStore(tokenFile), discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	client := api.NewClient(server.URL, server.Client(), store, discardLogger())
	client.SetUnauthorizedHook(store.Expire)
	store.SetClient(client)

	if _, err := store.Me(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if store.Authenticated() {
		t.Error("expected session expired after 401")
	}
}
