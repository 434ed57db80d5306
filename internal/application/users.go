package application

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/glueflow/automation-api/internal/domain"
)

// UserAccount is one provisioned operator account.
type UserAccount struct {
	Info     domain.UserInfo
	Password string
}

// UserService authenticates operators against a fixed account table. The
// table is provisioned at construction and read-only afterwards.
type UserService struct {
	accounts map[string]UserAccount
}

// NewUserService builds a service over the given accounts, keyed by user id.
func NewUserService(accounts map[string]UserAccount) *UserService {
	copied := make(map[string]UserAccount, len(accounts))
	for id, acc := range accounts {
		copied[id] = acc
	}
	return &UserService{accounts: copied}
}

// Authenticate verifies credentials. On failure the returned reason is one of
// the auth failure constants in the domain package.
func (s *UserService) Authenticate(userID, password string) (domain.UserInfo, string, error) {
	if userID == "" || password == "" {
		return domain.UserInfo{}, domain.AuthInvalidCredentials, fmt.Errorf("empty credentials")
	}

	account, ok := s.accounts[userID]
	if !ok {
		return domain.UserInfo{}, domain.AuthUserNotFound, domain.ErrUserNotFound
	}
	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return domain.UserInfo{}, domain.AuthInvalidPassword, domain.ErrInvalidPassword
	}
	return account.Info, "", nil
}

// TokenIssuer mints session tokens for authenticated users. Implemented by
// the jwt sessions service.
type TokenIssuer interface {
	Issue(user domain.UserInfo) (token string, expires time.Time, err error)
}

// LoginHandler builds the AUTH_LOGIN handler over a user service and token
// issuer. A nil issuer produces responses without session tokens.
func LoginHandler(users *UserService, issuer TokenIssuer) Handler {
	return func(req domain.Request) (any, error) {
		login, ok := req.(*domain.LoginRequest)
		if !ok {
			return domain.AuthFailedResponse(domain.AuthInvalidCredentials), nil
		}

		user, reason, err := users.Authenticate(login.UserID, login.Password)
		if err != nil {
			if reason == domain.AuthUserNotFound || reason == domain.AuthInvalidPassword {
				// Both collapse to one public reason so login probes cannot
				// enumerate valid user ids.
				return domain.AuthFailedResponse(domain.AuthInvalidCredentials), nil
			}
			return domain.AuthFailedResponse(reason), nil
		}

		if issuer == nil {
			return domain.AuthenticatedResponse(user, "", ""), nil
		}

		token, expires, err := issuer.Issue(user)
		if err != nil {
			return nil, fmt.Errorf("issue session token: %w", err)
		}
		return domain.AuthenticatedResponse(user, token, expires.Format(time.RFC3339)), nil
	}
}
