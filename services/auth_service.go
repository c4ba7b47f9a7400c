package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Niksiiii/BuConnect/entity"
	"github.com/Niksiiii/BuConnect/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSignInPending      = errors.New("sign-in already in progress")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrNotRehydrated      = errors.New("identity store is still loading")
)

var rePhone = regexp.MustCompile(`^\d{10}$`)

// UserStore is the durable side of the identity context.
type UserStore interface {
	Save(u *entity.User) error
	FindByID(id string) (*entity.User, error)
	All() ([]entity.User, error)
}

// AuthService is the mocked identity context: any non-empty identifier and
// password pair signs in, an artificial delay stands in for network latency,
// and the issued JWT is the only value the client persists.
type AuthService struct {
	users   UserStore
	secret  string
	ttl     time.Duration
	latency time.Duration

	mu       sync.Mutex
	byID     map[string]*entity.User
	sessions map[string]*entity.User // token → identity, cleared on sign-out
	inflight map[string]bool         // identifier → a sign-in is pending
	ready    bool
}

func NewAuthService(users UserStore, secret string, ttl, latency time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   secret,
		ttl:      ttl,
		latency:  latency,
		byID:     make(map[string]*entity.User),
		sessions: make(map[string]*entity.User),
		inflight: make(map[string]bool),
	}
}

// Rehydrate warms the identity cache from the durable store. Until it has
// run, identity lookups report loading rather than unauthenticated.
func (s *AuthService) Rehydrate() error {
	all, err := s.users.All()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range all {
		u := all[i]
		s.byID[u.ID] = &u
	}
	s.ready = true
	return nil
}

// SignIn accepts any non-empty identifier/password pair and constructs a
// role-appropriate identity with a synthetic time-derived id. It fails only
// when the durable write fails.
func (s *AuthService) SignIn(identifier, password string, role entity.Role) (string, *entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}
	if !role.Valid() {
		return "", nil, ErrInvalidRole
	}

	if err := s.claimInflight(identifier); err != nil {
		return "", nil, err
	}
	defer s.releaseInflight(identifier)

	time.Sleep(s.latency) // emulated network latency, not cancellable

	now := time.Now().UnixMilli()
	u := &entity.User{Role: role}
	switch role {
	case entity.RoleStudent:
		u.ID = fmt.Sprintf("student-%d", now)
		u.EnrollmentNumber = identifier
		u.FullName = "Student User"
	case entity.RoleFoodVendor:
		u.ID = fmt.Sprintf("food-vendor-%d", now)
		u.VendorName = identifier
	case entity.RoleLaundryVendor:
		u.ID = fmt.Sprintf("laundry-vendor-%d", now)
		u.VendorName = LaundryVendorName
	}

	return s.commit(u, password, ErrInvalidCredentials)
}

type SignUpInput struct {
	Role             entity.Role `json:"role"`
	FullName         string      `json:"fullName"`
	EnrollmentNumber string      `json:"enrollmentNumber"`
	Course           string      `json:"course"`
	PhoneNumber      string      `json:"phoneNumber"`
	Email            string      `json:"email"`
	VendorName       string      `json:"vendorName"`
	Password         string      `json:"password"`
	ConfirmPassword  string      `json:"confirmPassword"`
}

// ValidateSignUp runs the synchronous, pre-submission checks. Nothing is
// created when any of them fails.
func ValidateSignUp(in *SignUpInput) error {
	if in.Password == "" {
		return errors.New("password is required")
	}
	if in.Password != in.ConfirmPassword {
		return errors.New("passwords do not match")
	}
	switch in.Role {
	case entity.RoleStudent:
		if in.FullName == "" || in.EnrollmentNumber == "" || in.Course == "" ||
			in.PhoneNumber == "" || in.Email == "" {
			return errors.New("all student fields are required")
		}
		if !rePhone.MatchString(in.PhoneNumber) {
			return errors.New("please enter a valid 10-digit phone number")
		}
	case entity.RoleFoodVendor, entity.RoleLaundryVendor:
		if in.VendorName == "" {
			return errors.New("vendor name is required")
		}
	default:
		return ErrInvalidRole
	}
	return nil
}

// SignUp commits a validated profile. Callers run ValidateSignUp first;
// anything that fails past that point surfaces as a generic registration
// failure.
func (s *AuthService) SignUp(in *SignUpInput) (string, *entity.User, error) {
	time.Sleep(s.latency)

	u := &entity.User{
		ID:               fmt.Sprintf("user-%d", time.Now().UnixMilli()),
		Role:             in.Role,
		FullName:         strings.TrimSpace(in.FullName),
		EnrollmentNumber: strings.TrimSpace(in.EnrollmentNumber),
		Course:           strings.TrimSpace(in.Course),
		PhoneNumber:      strings.TrimSpace(in.PhoneNumber),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		VendorName:       strings.TrimSpace(in.VendorName),
	}
	return s.commit(u, in.Password, ErrRegistrationFailed)
}

// commit hashes the password, persists the user and opens a session. failErr
// hides the underlying cause, wrong password and storage failure alike.
func (s *AuthService) commit(u *entity.User, password string, failErr error) (string, *entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, failErr
	}
	u.Password = string(hash)
	u.CreatedAt = time.Now()

	if err := s.users.Save(u); err != nil {
		return "", nil, failErr
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role), s.secret, s.ttl)
	if err != nil {
		return "", nil, failErr
	}

	s.mu.Lock()
	s.byID[u.ID] = u
	s.sessions[token] = u
	s.mu.Unlock()
	return token, u, nil
}

// SignOut clears the in-memory identity. The stored user row stays, per the
// mocked path.
func (s *AuthService) SignOut(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// UserByID resolves an identity, cache first, then the durable store.
func (s *AuthService) UserByID(id string) (*entity.User, error) {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return nil, ErrNotRehydrated
	}
	if u, ok := s.byID[id]; ok {
		s.mu.Unlock()
		return u, nil
	}
	s.mu.Unlock()

	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.byID[u.ID] = u
	s.mu.Unlock()
	return u, nil
}

func (s *AuthService) claimInflight(identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[identifier] {
		return ErrSignInPending
	}
	s.inflight[identifier] = true
	return nil
}

func (s *AuthService) releaseInflight(identifier string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, identifier)
}
