package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/util"
)

type fakeIdentity struct {
	session    *domain.AuthSession
	loginErr   error
	current    *domain.User
	currentErr error
	registered *domain.User

	loginCalls   int
	currentCalls int
}

func (f *fakeIdentity) Login(ctx context.Context, username, password string) (*domain.AuthSession, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeIdentity) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	f.currentCalls++
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.current, nil
}

func (f *fakeIdentity) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	return f.registered, nil
}

func (f *fakeIdentity) Refresh(ctx context.Context, refreshToken string) (*domain.AuthSession, error) {
	return f.session, nil
}

func testSession() *domain.AuthSession {
	return &domain.AuthSession{
		User:  domain.User{ID: 1, Username: "emilys", Email: "emily@example.com"},
		Token: "access-token",
	}
}

func TestLoginPersistsSession(t *testing.T) {
	store := newFakeStore()
	identity := &fakeIdentity{session: testSession()}
	svc := NewAuthService(identity, store)

	var transitions []bool
	svc.Subscribe(func(authenticated bool) {
		transitions = append(transitions, authenticated)
	})

	user, err := svc.Login(context.Background(), "emilys", "emilyspass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "emilys" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !svc.IsAuthenticated() {
		t.Fatal("session should be authenticated")
	}
	if svc.Token() != "access-token" {
		t.Fatalf("unexpected token: %q", svc.Token())
	}

	if got := string(store.data["auth_token"]); got != "access-token" {
		t.Fatalf("token not persisted: %q", got)
	}
	var persisted domain.User
	if err := json.Unmarshal(store.data["user_data"], &persisted); err != nil {
		t.Fatalf("persisted user not valid JSON: %v", err)
	}
	if persisted.ID != 1 {
		t.Fatalf("unexpected persisted user: %+v", persisted)
	}

	if len(transitions) != 1 || !transitions[0] {
		t.Fatalf("expected a single authenticated transition, got %v", transitions)
	}
}

func TestLoginValidationShortCircuitsProvider(t *testing.T) {
	identity := &fakeIdentity{session: testSession()}
	svc := NewAuthService(identity, newFakeStore())

	_, err := svc.Login(context.Background(), "ab", "")
	var verrs util.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if identity.loginCalls != 0 {
		t.Fatal("provider must not be called with an invalid form")
	}
	if svc.IsAuthenticated() {
		t.Fatal("session must stay unauthenticated")
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	store := newFakeStore()
	identity := &fakeIdentity{loginErr: errors.New("Invalid credentials")}
	svc := NewAuthService(identity, store)

	if _, err := svc.Login(context.Background(), "emilys", "wrongpass"); err == nil {
		t.Fatal("expected login error")
	}
	if svc.IsAuthenticated() {
		t.Fatal("session must stay unauthenticated")
	}
	if store.sets != 0 {
		t.Fatal("nothing should be persisted on failure")
	}
}

func TestRestore(t *testing.T) {
	t.Run("valid persisted session", func(t *testing.T) {
		store := newFakeStore()
		store.data["auth_token"] = []byte("access-token")
		store.data["user_data"] = []byte(`{"id":1,"username":"emilys"}`)
		identity := &fakeIdentity{current: &domain.User{ID: 1, Username: "emilys"}}
		svc := NewAuthService(identity, store)

		if !svc.Restore(context.Background()) {
			t.Fatal("restore should succeed")
		}
		if !svc.IsAuthenticated() {
			t.Fatal("session should be authenticated after restore")
		}
		if identity.currentCalls != 1 {
			t.Fatalf("expected one identity check, got %d", identity.currentCalls)
		}
	})

	t.Run("no persisted state", func(t *testing.T) {
		svc := NewAuthService(&fakeIdentity{}, newFakeStore())
		if svc.Restore(context.Background()) {
			t.Fatal("restore should fail with nothing persisted")
		}
	})

	t.Run("rejected token clears storage", func(t *testing.T) {
		store := newFakeStore()
		store.data["auth_token"] = []byte("revoked")
		store.data["user_data"] = []byte(`{"id":1}`)
		identity := &fakeIdentity{currentErr: errors.New("Invalid/Expired Token!")}
		svc := NewAuthService(identity, store)

		if svc.Restore(context.Background()) {
			t.Fatal("restore should fail on a rejected token")
		}
		if _, ok := store.data["auth_token"]; ok {
			t.Fatal("rejected token should be cleared")
		}
		if _, ok := store.data["user_data"]; ok {
			t.Fatal("persisted user should be cleared")
		}
	})

	t.Run("expired token skips the identity call", func(t *testing.T) {
		store := newFakeStore()
		store.data["auth_token"] = []byte(expiredJWT(t))
		store.data["user_data"] = []byte(`{"id":1}`)
		identity := &fakeIdentity{current: &domain.User{ID: 1}}
		svc := NewAuthService(identity, store)

		if svc.Restore(context.Background()) {
			t.Fatal("restore should fail on an expired token")
		}
		if identity.currentCalls != 0 {
			t.Fatal("expired token must be rejected locally")
		}
		if _, ok := store.data["auth_token"]; ok {
			t.Fatal("expired token should be cleared")
		}
	})
}

func TestLogout(t *testing.T) {
	store := newFakeStore()
	identity := &fakeIdentity{session: testSession()}
	svc := NewAuthService(identity, store)

	var transitions []bool
	svc.Subscribe(func(authenticated bool) {
		transitions = append(transitions, authenticated)
	})

	if _, err := svc.Login(context.Background(), "emilys", "emilyspass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout()
	if svc.IsAuthenticated() {
		t.Fatal("session should be unauthenticated after logout")
	}
	if svc.Token() != "" {
		t.Fatal("token should be cleared")
	}
	if _, ok := store.data["auth_token"]; ok {
		t.Fatal("persisted token should be cleared")
	}

	// Logging out while already logged out must not notify again.
	svc.Logout()
	want := []bool{true, false}
	if len(transitions) != len(want) || transitions[0] != want[0] || transitions[1] != want[1] {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
}

func TestRegisterValidation(t *testing.T) {
	identity := &fakeIdentity{registered: &domain.User{ID: 209, Username: "newuser"}}
	svc := NewAuthService(identity, newFakeStore())

	reg := domain.Registration{
		FirstName: "New",
		LastName:  "User",
		Email:     "new@example.com",
		Username:  "newuser",
		Password:  "Abcdef12",
	}

	t.Run("valid form", func(t *testing.T) {
		user, err := svc.Register(context.Background(), reg, "Abcdef12")
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		if user.ID != 209 {
			t.Fatalf("unexpected created user: %+v", user)
		}
		if svc.IsAuthenticated() {
			t.Fatal("register must not auto-login")
		}
	})

	t.Run("weak password", func(t *testing.T) {
		weak := reg
		weak.Password = "abcdefgh"
		_, err := svc.Register(context.Background(), weak, "abcdefgh")
		var verrs util.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected validation errors, got %v", err)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		_, err := svc.Register(context.Background(), reg, "Different12")
		var verrs util.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected validation errors, got %v", err)
		}
		found := false
		for _, fe := range verrs {
			if fe.Field == "confirmPassword" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a confirmPassword error, got %v", verrs)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	identity := &fakeIdentity{current: &domain.User{ID: 1, Username: "emilys"}}
	svc := NewAuthService(identity, newFakeStore())

	user, err := svc.Authenticate(context.Background(), "access-token")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.Username != "emilys" {
		t.Fatalf("unexpected user: %+v", user)
	}

	identity.currentErr = errors.New("Invalid/Expired Token!")
	if _, err := svc.Authenticate(context.Background(), "bad"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// expiredJWT builds an unsigned token whose exp claim is in the past.
func expiredJWT(t *testing.T) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(fmt.Sprintf(`{"exp":%d}`, time.Now().Add(-time.Hour).Unix())))
	signature := base64.RawURLEncoding.EncodeToString([]byte("sig"))
	return header + "." + payload + "." + signature
}
