package state

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/kallmejoe/Pulseyapp/internal/model"
	"github.com/kallmejoe/Pulseyapp/internal/store"
)

// Validation and authentication outcomes surfaced to the caller. Nothing in
// the session flow panics or locks out; a mismatch is just a failed login.
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Session is the session state container: current user identity plus the
// authentication flag, validated against the store-persisted credential
// list. This is a simulated boundary, not a security control.
type Session struct {
	kv  *store.Store
	log *zap.Logger

	newID func() string

	authenticated bool
	user          *model.User
}

// OpenSession hydrates the session. A persisted authentication flag restores
// the signed-in user, falling back to the default seed user if the current
// user record is absent.
func OpenSession(kv *store.Store, opts ...Option) (*Session, error) {
	o := buildOptions(opts)
	s := &Session{kv: kv, log: o.log, newID: o.newID}

	raw, ok, err := kv.Get(keyIsAuthenticated)
	if err != nil {
		return nil, err
	}
	if !ok || raw != "true" {
		return s, nil
	}

	s.authenticated = true
	user, err := loadDoc(kv, keyUser, defaultUser)
	if err != nil {
		return nil, err
	}
	s.user = &user
	s.log.Info("session restored", zap.String("email", user.Email))
	return s, nil
}

func (s *Session) Authenticated() bool { return s.authenticated }

// User returns the signed-in user. The second return value is false when
// signed out.
func (s *Session) User() (model.User, bool) {
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Session) credentials() ([]model.Credential, error) {
	return loadDoc(s.kv, keyCredentials, seedCredentials)
}

// Login validates the submitted pair against the credential list by exact
// match. On success it materializes the per-email user record, fabricating
// one for a previously unseen email, and persists it as the current user.
// A mismatch returns ErrInvalidCredentials; no lockout, no rate limiting.
func (s *Session) Login(email, password string) error {
	email = strings.TrimSpace(email)

	creds, err := s.credentials()
	if err != nil {
		return err
	}
	valid := false
	for _, c := range creds {
		if c.Email == email && c.Password == password {
			valid = true
			break
		}
	}
	if !valid {
		s.log.Info("login rejected", zap.String("email", email))
		return ErrInvalidCredentials
	}

	user, existed, err := s.userForEmail(email)
	if err != nil {
		return err
	}
	if !existed {
		if err := saveDoc(s.kv, userKeyPrefix+email, user); err != nil {
			return err
		}
	}

	s.authenticated = true
	s.user = &user
	if err := s.kv.Set(keyIsAuthenticated, "true"); err != nil {
		return err
	}
	if err := saveDoc(s.kv, keyUser, user); err != nil {
		return err
	}
	s.log.Info("login succeeded", zap.String("email", email), zap.Bool("admin", user.IsAdmin))
	return nil
}

// userForEmail loads the per-email record, fabricating one from the email
// when no prior record exists.
func (s *Session) userForEmail(email string) (model.User, bool, error) {
	raw, ok, err := s.kv.Get(userKeyPrefix + email)
	if err != nil {
		return model.User{}, false, err
	}
	if ok {
		var user model.User
		if err := decodeDoc(userKeyPrefix+email, raw, &user); err != nil {
			return model.User{}, false, err
		}
		return user, true, nil
	}
	return s.fabricateUser("", email), false, nil
}

func (s *Session) fabricateUser(name, email string) model.User {
	admin := email == adminEmail
	if name == "" {
		if admin {
			name = "Admin User"
		} else {
			name, _, _ = strings.Cut(email, "@")
		}
	}
	tier := "Free"
	if admin {
		tier = "Admin"
	}
	return model.User{
		ID:             s.newID(),
		Name:           name,
		Email:          email,
		Avatar:         defaultAvatar,
		Bio:            defaultBio,
		MembershipType: tier,
		IsAdmin:        admin,
	}
}

// Signup validates the password length, then rejects an email already on the
// credential list. Either failure leaves the credential list untouched.
// Otherwise the credential is appended and the login flow runs, with the
// submitted display name carried onto the fabricated record.
func (s *Session) Signup(name, email, password string) error {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	creds, err := s.credentials()
	if err != nil {
		return err
	}
	for _, c := range creds {
		if c.Email == email {
			return ErrEmailExists
		}
	}

	creds = append(creds, model.Credential{Email: email, Password: password})
	if err := saveDoc(s.kv, keyCredentials, creds); err != nil {
		return err
	}
	if name != "" {
		if err := saveDoc(s.kv, userKeyPrefix+email, s.fabricateUser(name, email)); err != nil {
			return err
		}
	}
	s.log.Info("signup recorded", zap.String("email", email))
	return s.Login(email, password)
}

// Logout clears the in-memory session and the current-user records.
// Per-email records and credentials are retained for future logins.
func (s *Session) Logout() error {
	s.authenticated = false
	s.user = nil
	if err := s.kv.Delete(keyIsAuthenticated); err != nil {
		return err
	}
	if err := s.kv.Delete(keyUser); err != nil {
		return err
	}
	s.log.Info("logged out")
	return nil
}
