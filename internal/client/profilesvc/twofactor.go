package profilesvc

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/homeboard/internal/common"
)

// The 2FA flow is a local prototype: the code is generated, stored and
// verified entirely on this client, with no server involvement. It
// demonstrates the enrollment UX and provides no security.

const (
	twoFactorEnabledPrefix = "2fa_enabled:"
	twoFactorCodePrefix    = "2fa_code:"
)

// codeFn generates the 6-digit code; replaced in tests.
var codeFn = func() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Enable2FA generates a 6-digit code for the account and stores it
// locally. The code is returned so the caller can display it.
func (s *Service) Enable2FA(ctx context.Context, email string) (string, error) {
	code, err := codeFn()
	if err != nil {
		return "", err
	}
	if err := s.kv.Set(ctx, twoFactorCodePrefix+email, []byte(code)); err != nil {
		return "", err
	}
	if err := s.kv.Set(ctx, twoFactorEnabledPrefix+email, []byte("1")); err != nil {
		return "", err
	}
	return code, nil
}

// Verify2FA compares the submitted code against the stored one.
func (s *Service) Verify2FA(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.kv.Get(ctx, twoFactorCodePrefix+email)
	if err != nil {
		return false, err
	}
	if stored == nil {
		return false, common.ErrNotFound
	}
	return string(stored) == code, nil
}

// Disable2FA removes the flag and the code.
func (s *Service) Disable2FA(ctx context.Context, email string) error {
	if err := s.kv.Delete(ctx, twoFactorCodePrefix+email); err != nil {
		return err
	}
	return s.kv.Delete(ctx, twoFactorEnabledPrefix+email)
}

// TwoFactorEnabled reports whether the account has the prototype
// enabled.
func (s *Service) TwoFactorEnabled(ctx context.Context, email string) (bool, error) {
	v, err := s.kv.Get(ctx, twoFactorEnabledPrefix+email)
	if err != nil {
		return false, err
	}
	return string(v) == "1", nil
}
