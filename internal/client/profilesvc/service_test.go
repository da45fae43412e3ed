package profilesvc

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
	"github.com/dmitrijs2005/homeboard/internal/client/kvstore"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/client/upload"
	"github.com/dmitrijs2005/homeboard/internal/common"
)

type fakeGateway struct {
	profile  models.Profile
	updates  []models.ProfileUpdate
	uploads  []upload.Input
	deleted  bool
	uploadID int64
}

func (f *fakeGateway) GetProfile(context.Context) (*models.Profile, error) {
	p := f.profile
	return &p, nil
}

func (f *fakeGateway) UpdateProfile(_ context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	f.updates = append(f.updates, update)
	if update.DisplayName != nil {
		f.profile.DisplayName = update.DisplayName
	}
	if update.Email != nil {
		f.profile.Email = *update.Email
	}
	if update.AvatarURL != nil {
		f.profile.AvatarURL = update.AvatarURL
	}
	if update.WallpaperURL != nil {
		f.profile.WallpaperURL = update.WallpaperURL
	}
	if update.Theme != nil {
		f.profile.Theme = *update.Theme
	}
	p := f.profile
	return &p, nil
}

func (f *fakeGateway) DeleteAccount(context.Context) error {
	f.deleted = true
	return nil
}

func (f *fakeGateway) UploadFile(_ context.Context, in upload.Input, _ upload.ProgressFunc) (*models.FileRecord, error) {
	f.uploads = append(f.uploads, in)
	f.uploadID++
	return &models.FileRecord{
		ID:               f.uploadID,
		OriginalFilename: in.Name,
		FileURL:          "http://cdn/" + in.Name,
	}, nil
}

func newTestService(t *testing.T) (*Service, *fakeGateway, *activity.Viewer) {
	t.Helper()
	gw := &fakeGateway{profile: models.Profile{ID: 1, Email: "a@b.c", Theme: models.ThemeSystem}}
	bus, err := activity.NewBus(context.Background(), kvstore.NewMemoryStore())
	require.NoError(t, err)
	viewer := activity.NewViewer(bus, 0)
	t.Cleanup(viewer.Close)
	return New(gw, kvstore.NewMemoryStore(), bus), gw, viewer
}

func TestSetDisplayName(t *testing.T) {
	s, gw, _ := newTestService(t)

	profile, err := s.SetDisplayName(context.Background(), "Alice")
	require.NoError(t, err)
	require.NotNil(t, profile.DisplayName)
	assert.Equal(t, "Alice", *profile.DisplayName)

	require.Len(t, gw.updates, 1)
	assert.Nil(t, gw.updates[0].Email, "partial update must not carry other fields")
}

func TestChangePassword_MismatchRejectedLocally(t *testing.T) {
	s, gw, _ := newTestService(t)

	err := s.ChangePassword(context.Background(), "old", "new1", "new2")
	require.ErrorIs(t, err, common.ErrPasswordMismatch)
	assert.Empty(t, gw.updates, "mismatch must not reach the server")

	require.Error(t, s.ChangePassword(context.Background(), "old", "", ""))
}

func TestChangePassword_SendsOnlyNewPassword(t *testing.T) {
	s, gw, _ := newTestService(t)

	require.NoError(t, s.ChangePassword(context.Background(), "old", "hunter2", "hunter2"))
	require.Len(t, gw.updates, 1)
	require.NotNil(t, gw.updates[0].Password)
	assert.Equal(t, "hunter2", *gw.updates[0].Password)
	assert.Nil(t, gw.updates[0].DisplayName)
}

func TestSetTheme(t *testing.T) {
	s, _, viewer := newTestService(t)

	profile, err := s.SetTheme(context.Background(), models.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, profile.Theme)

	entries := viewer.Entries()
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[0].Message, "dark")

	_, err = s.SetTheme(context.Background(), "neon")
	require.Error(t, err)
}

func TestUploadAvatar_PatchesProfileURL(t *testing.T) {
	s, gw, _ := newTestService(t)

	profile, err := s.UploadAvatar(context.Background(), upload.Input{
		Name:   "me.png",
		Reader: strings.NewReader("img"),
		Size:   3,
		MIME:   "image/png",
	}, nil)
	require.NoError(t, err)

	require.Len(t, gw.uploads, 1)
	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, "http://cdn/me.png", *profile.AvatarURL)
	assert.Nil(t, profile.WallpaperURL)
}

func TestUploadWallpaper_PatchesProfileURL(t *testing.T) {
	s, gw, _ := newTestService(t)

	profile, err := s.UploadWallpaper(context.Background(), upload.Input{
		Name:   "bg.png",
		Reader: strings.NewReader("img"),
		Size:   3,
		MIME:   "image/png",
	}, nil)
	require.NoError(t, err)

	require.Len(t, gw.uploads, 1)
	require.NotNil(t, profile.WallpaperURL)
	assert.Equal(t, "http://cdn/bg.png", *profile.WallpaperURL)
}

func TestDeleteAccount(t *testing.T) {
	s, gw, viewer := newTestService(t)

	require.NoError(t, s.DeleteAccount(context.Background()))
	assert.True(t, gw.deleted)

	entries := viewer.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, activity.SeverityWarning, entries[0].Severity)
}
