package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
	"github.com/Parindya2/TripRoute/internal/util"
)

const (
	tokenKey = "auth_token"
	userKey  = "user_data"
)

// AuthService owns the auth session slice. Credentials are checked by the
// external identity provider; this service holds the in-memory profile and
// token, persists them to local storage, and publishes authenticated /
// unauthenticated transitions to an optional subscriber (the navigation
// layer's sole routing signal).
type AuthService struct {
	identity ports.IdentityProvider
	store    ports.KeyValueStore

	mu       sync.Mutex
	user     *domain.User
	token    string
	onChange func(authenticated bool)
}

func NewAuthService(identity ports.IdentityProvider, store ports.KeyValueStore) *AuthService {
	return &AuthService{identity: identity, store: store}
}

// Subscribe registers the transition callback. It is invoked outside the
// service lock, after each authenticated/unauthenticated flip.
func (s *AuthService) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Login validates the form fields, then authenticates against the identity
// provider. On success the token and profile are persisted and the session
// becomes authenticated; on failure the upstream message is returned and the
// session is left untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if errs := util.ValidateLogin(username, password); len(errs) > 0 {
		return nil, errs
	}

	session, err := s.identity.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.persist(session)

	s.mu.Lock()
	user := session.User
	s.user = &user
	s.token = session.Token
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(true)
	}
	u := session.User
	return &u, nil
}

// Register validates the form and creates the account. It never auto-logs-in;
// the caller invokes Login separately with the new credentials.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration, confirmPassword string) (*domain.User, error) {
	errs := util.ValidateRegistration(reg.FirstName, reg.LastName, reg.Email, reg.Username, reg.Password, confirmPassword)
	if len(errs) > 0 {
		return nil, errs
	}
	return s.identity.Register(ctx, reg)
}

// Refresh exchanges the refresh token for a new token pair and swaps it into
// the session. No authenticated/unauthenticated transition occurs.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthSession, error) {
	session, err := s.identity.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	s.persist(session)

	s.mu.Lock()
	user := session.User
	s.user = &user
	s.token = session.Token
	s.mu.Unlock()
	return session, nil
}

// Restore rebuilds the session from persisted state at startup. An absent or
// invalid token leaves the session unauthenticated and clears storage; no
// failure mode propagates out of startup.
func (s *AuthService) Restore(ctx context.Context) bool {
	token, user := s.readPersisted()
	if token == "" || user == nil {
		return false
	}

	if expired(token) {
		s.clearPersisted()
		return false
	}

	current, err := s.identity.CurrentUser(ctx, token)
	if err != nil {
		log.Printf("auth: persisted token rejected: %v", err)
		s.clearPersisted()
		return false
	}

	s.mu.Lock()
	s.user = current
	s.token = token
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(true)
	}
	return true
}

// Logout clears persisted and in-memory auth state.
func (s *AuthService) Logout() {
	s.clearPersisted()

	s.mu.Lock()
	wasAuthenticated := s.user != nil
	s.user = nil
	s.token = ""
	notify := s.onChange
	s.mu.Unlock()

	if wasAuthenticated && notify != nil {
		notify(false)
	}
}

// Authenticate checks a bearer token against the identity provider. Used by
// the HTTP middleware.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.identity.CurrentUser(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) CurrentUser() (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

func (s *AuthService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated holds exactly when an in-memory profile is present.
func (s *AuthService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *AuthService) persist(session *domain.AuthSession) {
	if err := s.store.Set(tokenKey, []byte(session.Token)); err != nil {
		log.Printf("auth: persist token: %v", err)
	}
	data, err := json.Marshal(session.User)
	if err != nil {
		log.Printf("auth: marshal user: %v", err)
		return
	}
	if err := s.store.Set(userKey, data); err != nil {
		log.Printf("auth: persist user: %v", err)
	}
}

func (s *AuthService) readPersisted() (string, *domain.User) {
	tokenData, err := s.store.Get(tokenKey)
	if err != nil {
		if err != ports.ErrKeyNotFound {
			log.Printf("auth: read token: %v", err)
		}
		return "", nil
	}

	userData, err := s.store.Get(userKey)
	if err != nil {
		if err != ports.ErrKeyNotFound {
			log.Printf("auth: read user: %v", err)
		}
		return "", nil
	}

	var user domain.User
	if err := json.Unmarshal(userData, &user); err != nil {
		log.Printf("auth: corrupt persisted user: %v", err)
		return "", nil
	}
	return string(tokenData), &user
}

func (s *AuthService) clearPersisted() {
	if err := s.store.Delete(tokenKey); err != nil {
		log.Printf("auth: clear token: %v", err)
	}
	if err := s.store.Delete(userKey); err != nil {
		log.Printf("auth: clear user: %v", err)
	}
}

// expired reports whether the token carries an exp claim in the past. The
// signature is not checked here; the identity API is still the authority and
// gets the final say in Restore.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Opaque tokens pass through to the identity API.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
