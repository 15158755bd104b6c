package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/deskmetrics/helpdesk-reports/internal/domain"
)

// Account is one staff credential entry. CodeHash is a bcrypt hash of the
// access code; the plaintext code is never stored.
type Account struct {
	Login       string           `yaml:"login"`
	CodeHash    string           `yaml:"code_hash"`
	Name        string           `yaml:"name"`
	Role        domain.StaffRole `yaml:"role"`
	StaffID     int64            `yaml:"staff_id"`
	Departments []string         `yaml:"departments"`
}

// Identity converts the account to the principal used for access checks.
func (a Account) Identity() domain.StaffIdentity {
	return domain.StaffIdentity{
		StaffID:     a.StaffID,
		Login:       a.Login,
		Name:        a.Name,
		Role:        a.Role,
		Departments: append([]string(nil), a.Departments...),
	}
}

type credentialsFile struct {
	Accounts []Account `yaml:"accounts"`
}

// CredentialStore resolves logins to accounts. It is read-only after
// construction.
type CredentialStore struct {
	accounts map[string]Account
}

// LoadCredentials parses a YAML credential file. Every code_hash must be a
// bcrypt hash of the given cost.
func LoadCredentials(path string, cost int) (*CredentialStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var file credentialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", path, err)
	}
	return NewCredentialStore(file.Accounts, cost)
}

// NewCredentialStore validates and indexes accounts. Hashes must share the
// cost of the CodeVerifier's throwaway hash, otherwise a known login would
// answer faster than an unknown one.
func NewCredentialStore(accounts []Account, cost int) (*CredentialStore, error) {
	cost = EffectiveCost(cost)
	store := &CredentialStore{accounts: make(map[string]Account, len(accounts))}
	for i, acc := range accounts {
		acc.Login = strings.TrimSpace(acc.Login)
		switch {
		case acc.Login == "":
			return nil, fmt.Errorf("account %d: login is required", i)
		case acc.CodeHash == "":
			return nil, fmt.Errorf("account %q: code_hash is required", acc.Login)
		case len(acc.Departments) == 0:
			return nil, fmt.Errorf("account %q: at least one department is required", acc.Login)
		}
		hashCost, err := bcrypt.Cost([]byte(acc.CodeHash))
		if err != nil {
			return nil, fmt.Errorf("account %q: code_hash is not a bcrypt hash: %w", acc.Login, err)
		}
		if hashCost != cost {
			return nil, fmt.Errorf("account %q: code_hash cost %d does not match AUTH_BCRYPT_COST %d", acc.Login, hashCost, cost)
		}
		if acc.Role == "" {
			acc.Role = domain.StaffRoleAnalyst
		}
		if _, dup := store.accounts[acc.Login]; dup {
			return nil, fmt.Errorf("account %q: duplicate login", acc.Login)
		}
		store.accounts[acc.Login] = acc
	}
	if len(store.accounts) == 0 {
		return nil, errors.New("credential store has no accounts")
	}
	return store, nil
}

// Lookup returns the account for login.
func (s *CredentialStore) Lookup(login string) (Account, bool) {
	if s == nil {
		return Account{}, false
	}
	acc, ok := s.accounts[login]
	return acc, ok
}

// Len reports the number of accounts.
func (s *CredentialStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.accounts)
}
