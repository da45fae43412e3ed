package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/client/upload"
)

func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Profile(ctx)
	if err != nil {
		return a.printErr(err)
	}
	name := "(not set)"
	if p.DisplayName != nil && *p.DisplayName != "" {
		name = *p.DisplayName
	}
	fmt.Fprintf(a.out, "Email:        %s\n", p.Email)
	fmt.Fprintf(a.out, "Display name: %s\n", name)
	fmt.Fprintf(a.out, "Theme:        %s\n", p.Theme)
	if p.AvatarURL != nil && *p.AvatarURL != "" {
		fmt.Fprintf(a.out, "Avatar:       %s\n", *p.AvatarURL)
	}
	if p.WallpaperURL != nil && *p.WallpaperURL != "" {
		fmt.Fprintf(a.out, "Wallpaper:    %s\n", *p.WallpaperURL)
	}
	return nil
}

func (a *App) SetName(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "New display name", a.out)
	if err != nil {
		return a.printErr(err)
	}
	if _, err := a.profile.SetDisplayName(ctx, name); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Display name updated")
	return nil
}

func (a *App) SetEmail(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "New email", a.out)
	if err != nil {
		return a.printErr(err)
	}
	if _, err := a.profile.SetEmail(ctx, email); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Email updated")
	return nil
}

func (a *App) Passwd(ctx context.Context) error {
	oldPw, err := GetPassword(a.out, "Current password")
	if err != nil {
		return a.printErr(err)
	}
	newPw, err := GetPassword(a.out, "New password")
	if err != nil {
		return a.printErr(err)
	}
	confirm, err := GetPassword(a.out, "Confirm new password")
	if err != nil {
		return a.printErr(err)
	}

	if err := a.profile.ChangePassword(ctx, oldPw, newPw, confirm); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: theme light|dark|system")
		return nil
	}
	if _, err := a.profile.SetTheme(ctx, models.Theme(args[0])); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintf(a.out, "Theme set to %s\n", args[0])
	return nil
}

func (a *App) Avatar(ctx context.Context, args []string) error {
	return a.uploadProfileImage(ctx, args, "avatar", a.profile.UploadAvatar)
}

func (a *App) Wallpaper(ctx context.Context, args []string) error {
	return a.uploadProfileImage(ctx, args, "wallpaper", a.profile.UploadWallpaper)
}

func (a *App) uploadProfileImage(ctx context.Context, args []string, what string,
	uploadFn func(context.Context, upload.Input, upload.ProgressFunc) (*models.Profile, error)) error {

	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s <path>\n", what)
		return nil
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return a.printErr(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return a.printErr(err)
	}

	_, err = uploadFn(ctx, upload.Input{
		Name:   filepath.Base(path),
		Reader: f,
		Size:   info.Size(),
	}, func(pct int) {
		fmt.Fprintf(a.out, "\rUploading... %3d%%", pct)
	})
	fmt.Fprintln(a.out)
	if err != nil {
		return a.printErr(err)
	}
	fmt.Fprintf(a.out, "New %s set\n", what)
	return nil
}

// TwoFactor drives the local 2FA prototype.
//
//	2fa status | on | off | verify <code>
func (a *App) TwoFactor(ctx context.Context, args []string) error {
	usage := "Usage: 2fa status|on|off|verify <code>"
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	profile, err := a.profile.Profile(ctx)
	if err != nil {
		return a.printErr(err)
	}
	email := profile.Email

	switch args[0] {
	case "status":
		enabled, err := a.profile.TwoFactorEnabled(ctx, email)
		if err != nil {
			return a.printErr(err)
		}
		if enabled {
			fmt.Fprintln(a.out, "Two-factor prototype is enabled")
		} else {
			fmt.Fprintln(a.out, "Two-factor prototype is disabled")
		}

	case "on":
		code, err := a.profile.Enable2FA(ctx, email)
		if err != nil {
			return a.printErr(err)
		}
		fmt.Fprintf(a.out, "Two-factor enabled. Your code: %s (local prototype, not a security feature)\n", code)

	case "off":
		if err := a.profile.Disable2FA(ctx, email); err != nil {
			return a.printErr(err)
		}
		fmt.Fprintln(a.out, "Two-factor disabled")

	case "verify":
		if len(args) < 2 {
			fmt.Fprintln(a.out, usage)
			return nil
		}
		ok, err := a.profile.Verify2FA(ctx, email, args[1])
		if err != nil {
			return a.printErr(err)
		}
		if ok {
			fmt.Fprintln(a.out, "Code accepted")
		} else {
			fmt.Fprintln(a.out, "Wrong code")
		}

	default:
		fmt.Fprintln(a.out, usage)
	}
	return nil
}

func (a *App) Contact(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return a.printErr(err)
	}
	email, err := GetSimpleText(a.reader, "Your email", a.out)
	if err != nil {
		return a.printErr(err)
	}
	subject, err := GetSimpleText(a.reader, "Subject", a.out)
	if err != nil {
		return a.printErr(err)
	}
	message, err := GetSimpleText(a.reader, "Message", a.out)
	if err != nil {
		return a.printErr(err)
	}

	if err := a.gateway.SendContactMessage(ctx, name, email, subject, message); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Message sent")
	return nil
}

// ActivityLog shows recent events or toggles recording.
//
//	log | log on | log off
func (a *App) ActivityLog(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "on":
			if err := a.bus.SetEnabled(ctx, true); err != nil {
				return a.printErr(err)
			}
			fmt.Fprintln(a.out, "Activity log enabled")
			return nil
		case "off":
			if err := a.bus.SetEnabled(ctx, false); err != nil {
				return a.printErr(err)
			}
			fmt.Fprintln(a.out, "Activity log disabled")
			return nil
		default:
			fmt.Fprintln(a.out, "Usage: log [on|off]")
			return nil
		}
	}

	entries := a.viewer.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No activity yet")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "%s  %-7s %s\n", e.Time.Format("15:04:05"), e.Severity, e.Message)
	}
	return nil
}

func (a *App) DeleteAccount(ctx context.Context) error {
	confirm, err := GetSimpleText(a.reader, "Type 'yes' to permanently delete your account", a.out)
	if err != nil {
		return a.printErr(err)
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Aborted")
		return nil
	}
	if err := a.profile.DeleteAccount(ctx); err != nil {
		return a.printErr(err)
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}
