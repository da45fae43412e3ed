package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.printErr(err)
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.printErr(err)
	}
	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return a.printErr(err)
	}

	user, err := a.gateway.Register(ctx, email, username, password)
	if err != nil {
		return a.printErr(err)
	}

	a.userName = user.Username
	fmt.Fprintf(a.out, "Account created, welcome %s\n", user.Username)
	a.bus.Publish("account registered", activity.SeveritySuccess)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.printErr(err)
	}
	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return a.printErr(err)
	}

	user, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		return a.printErr(err)
	}

	a.userName = user.Username
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	a.bus.Publish("logged in", activity.SeverityInfo)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.gateway.Logout(ctx); err != nil {
		return a.printErr(err)
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.gateway.VerifySession(ctx)
	if err != nil {
		return a.printErr(err)
	}
	a.userName = user.Username
	fmt.Fprintf(a.out, "%s <%s> (since %s)\n", user.Username, user.Email, user.CreatedAt)
	return nil
}
