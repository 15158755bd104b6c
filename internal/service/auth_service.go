package service

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/deskmetrics/helpdesk-reports/internal/auth"
	"github.com/deskmetrics/helpdesk-reports/internal/domain"
	"github.com/deskmetrics/helpdesk-reports/internal/events"
	apperrors "github.com/deskmetrics/helpdesk-reports/pkg/util/errorutil"
)

// Credential bounds checked before any lookup.
const (
	MaxLoginLength = 50
	MaxCodeLength  = 100
)

var loginPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)

// CredentialLookup resolves a login to its stored account.
type CredentialLookup interface {
	Lookup(login string) (auth.Account, bool)
}

// CodeChecker compares an access code with a stored hash. An empty hash must
// still cost a full comparison.
type CodeChecker interface {
	Verify(hashed, code string) bool
}

// LoginThrottle tracks failed logins.
type LoginThrottle interface {
	Locked(ctx context.Context, login string) bool
	RecordFailure(ctx context.Context, login string)
	Reset(ctx context.Context, login string)
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Credentials CredentialLookup
	Verifier    CodeChecker
	Throttle    LoginThrottle
	Tokens      *auth.TokenManager
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// AuthService verifies login/code pairs and issues bearer tokens.
type AuthService struct {
	credentials CredentialLookup
	verifier    CodeChecker
	throttle    LoginThrottle
	tokenMgr    *auth.TokenManager
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		credentials: deps.Credentials,
		verifier:    deps.Verifier,
		throttle:    deps.Throttle,
		tokenMgr:    deps.Tokens,
		dispatcher:  deps.Dispatcher,
		logger:      deps.Logger,
	}
}

// Authenticate returns the identity for a valid login/code pair. Unknown
// logins, wrong codes and locked logins all run one hash comparison and fail
// with the same error.
func (s *AuthService) Authenticate(ctx context.Context, login, code string) (domain.StaffIdentity, error) {
	if login == "" || code == "" {
		s.logger.Warn("missing credentials")
		return domain.StaffIdentity{}, apperrors.NewAuthenticationFailure(nil)
	}
	if len(login) > MaxLoginLength || len(code) > MaxCodeLength || !loginPattern.MatchString(login) {
		s.logger.Warn("malformed credentials", zap.Int("login_length", len(login)), zap.Int("code_length", len(code)))
		return domain.StaffIdentity{}, apperrors.NewValidationError("invalid authentication parameters", nil)
	}

	account, known := s.credentials.Lookup(login)
	locked := s.throttle != nil && s.throttle.Locked(ctx, login)

	hash := ""
	if known {
		hash = account.CodeHash
	}
	matched := s.verifier.Verify(hash, code)

	switch {
	case locked:
		return s.fail(ctx, login, events.ReasonLocked)
	case !known:
		return s.fail(ctx, login, events.ReasonUnknownLogin)
	case !matched:
		return s.fail(ctx, login, events.ReasonBadCode)
	}

	if s.throttle != nil {
		s.throttle.Reset(ctx, login)
	}
	identity := account.Identity()
	s.publish(ctx, events.NewEvent(events.EventLoginSucceeded, actorOf(identity), nil))
	s.logger.Info("staff authenticated", zap.String("login", login), zap.Int64("staff_id", identity.StaffID))
	return identity, nil
}

// IssueToken authenticates and returns a signed bearer token.
func (s *AuthService) IssueToken(ctx context.Context, login, code string) (domain.StaffIdentity, string, time.Time, error) {
	identity, err := s.Authenticate(ctx, login, code)
	if err != nil {
		return domain.StaffIdentity{}, "", time.Time{}, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(identity)
	if err != nil {
		return domain.StaffIdentity{}, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return identity, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) fail(ctx context.Context, login, reason string) (domain.StaffIdentity, error) {
	if s.throttle != nil && reason != events.ReasonLocked {
		s.throttle.RecordFailure(ctx, login)
	}
	s.publish(ctx, events.NewEvent(events.EventLoginFailed, events.Actor{Login: login}, events.LoginFailedPayload{Reason: reason}))
	return domain.StaffIdentity{}, apperrors.NewAuthenticationFailure(nil)
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("audit handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func actorOf(identity domain.StaffIdentity) events.Actor {
	id := identity.StaffID
	return events.Actor{Login: identity.Login, StaffID: &id}
}
