// Package profilesvc wraps the gateway's profile operations with the
// client-side validation and follow-up steps the settings screens need.
package profilesvc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
	"github.com/dmitrijs2005/homeboard/internal/client/kvstore"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/client/upload"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

// Gateway is the subset of the api client the service needs.
type Gateway interface {
	GetProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)
	DeleteAccount(ctx context.Context) error
	UploadFile(ctx context.Context, in upload.Input, onProgress upload.ProgressFunc) (*models.FileRecord, error)
}

// Service implements the profile and security settings flows.
type Service struct {
	gw  Gateway
	kv  kvstore.Store
	bus *activity.Bus
}

func New(gw Gateway, kv kvstore.Store, bus *activity.Bus) *Service {
	return &Service{gw: gw, kv: kv, bus: bus}
}

// Profile fetches the current profile.
func (s *Service) Profile(ctx context.Context) (*models.Profile, error) {
	return s.gw.GetProfile(ctx)
}

// SetDisplayName updates the display name.
func (s *Service) SetDisplayName(ctx context.Context, name string) (*models.Profile, error) {
	return s.gw.UpdateProfile(ctx, models.ProfileUpdate{DisplayName: &name})
}

// SetEmail updates the account email.
func (s *Service) SetEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.gw.UpdateProfile(ctx, models.ProfileUpdate{Email: &email})
}

// ChangePassword submits a new password. Only the confirmation match is
// checked client-side; the profile endpoint takes the new password alone,
// so the old one is collected for the form but never transmitted.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	if newPassword == "" {
		return fmt.Errorf("password must not be empty")
	}
	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}
	_, err := s.gw.UpdateProfile(ctx, models.ProfileUpdate{Password: &newPassword})
	if err != nil {
		return err
	}
	s.publish("password changed", activity.SeveritySuccess)
	return nil
}

// SetTheme persists the theme preference.
func (s *Service) SetTheme(ctx context.Context, theme models.Theme) (*models.Profile, error) {
	if !theme.Valid() {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
	profile, err := s.gw.UpdateProfile(ctx, models.ProfileUpdate{Theme: &theme})
	if err != nil {
		return nil, err
	}
	s.publish(fmt.Sprintf("theme set to %s", theme), activity.SeverityInfo)
	return profile, nil
}

// UploadAvatar uploads the image and points the profile at it.
func (s *Service) UploadAvatar(ctx context.Context, in upload.Input, onProgress upload.ProgressFunc) (*models.Profile, error) {
	record, err := s.gw.UploadFile(ctx, in, onProgress)
	if err != nil {
		return nil, err
	}
	profile, err := s.gw.UpdateProfile(ctx, models.ProfileUpdate{AvatarURL: &record.FileURL})
	if err != nil {
		return nil, err
	}
	s.publish("avatar updated", activity.SeveritySuccess)
	return profile, nil
}

// UploadWallpaper uploads the image and points the profile at it.
func (s *Service) UploadWallpaper(ctx context.Context, in upload.Input, onProgress upload.ProgressFunc) (*models.Profile, error) {
	record, err := s.gw.UploadFile(ctx, in, onProgress)
	if err != nil {
		return nil, err
	}
	profile, err := s.gw.UpdateProfile(ctx, models.ProfileUpdate{WallpaperURL: &record.FileURL})
	if err != nil {
		return nil, err
	}
	s.publish("wallpaper updated", activity.SeveritySuccess)
	return profile, nil
}

// DeleteAccount removes the account.
func (s *Service) DeleteAccount(ctx context.Context) error {
	if err := s.gw.DeleteAccount(ctx); err != nil {
		return err
	}
	s.publish("account deleted", activity.SeverityWarning)
	return nil
}

func (s *Service) publish(msg string, severity activity.Severity) {
	if s.bus != nil {
		s.bus.Publish(msg, severity)
	}
}
