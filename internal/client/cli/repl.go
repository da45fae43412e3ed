package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Files(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	FilterFiles(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Preview(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error

	Folders(ctx context.Context) error
	NewFolder(ctx context.Context) error
	DelFolder(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error

	Platforms(ctx context.Context) error
	AddPlatform(ctx context.Context) error
	DelPlatform(ctx context.Context, args []string) error
	Reorder(ctx context.Context, args []string) error
	Games(ctx context.Context) error
	AddGame(ctx context.Context) error
	DelGame(ctx context.Context, args []string) error

	Profile(ctx context.Context) error
	SetName(ctx context.Context) error
	SetEmail(ctx context.Context) error
	Passwd(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Avatar(ctx context.Context, args []string) error
	Wallpaper(ctx context.Context, args []string) error
	TwoFactor(ctx context.Context, args []string) error
	Contact(ctx context.Context) error
	ActivityLog(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: files, search, filter, upload, preview, delete, " +
		"folders, newfolder, delfolder, move, " +
		"platforms, addplatform, delplatform, reorder, games, addgame, delgame, " +
		"profile, setname, setemail, passwd, theme, avatar, wallpaper, 2fa, " +
		"contact, log, whoami, delacc, logout, exit"
)

// runREPL starts the read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hb %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "files":
			_ = a.Files(ctx)
		case "search":
			_ = a.Search(ctx, args)
		case "filter":
			_ = a.FilterFiles(ctx, args)
		case "upload":
			_ = a.Upload(ctx, args)
		case "preview":
			_ = a.Preview(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)

		case "folders":
			_ = a.Folders(ctx)
		case "newfolder":
			_ = a.NewFolder(ctx)
		case "delfolder":
			_ = a.DelFolder(ctx, args)
		case "move":
			_ = a.Move(ctx, args)

		case "platforms":
			_ = a.Platforms(ctx)
		case "addplatform":
			_ = a.AddPlatform(ctx)
		case "delplatform":
			_ = a.DelPlatform(ctx, args)
		case "reorder":
			_ = a.Reorder(ctx, args)
		case "games":
			_ = a.Games(ctx)
		case "addgame":
			_ = a.AddGame(ctx)
		case "delgame":
			_ = a.DelGame(ctx, args)

		case "profile":
			_ = a.Profile(ctx)
		case "setname":
			_ = a.SetName(ctx)
		case "setemail":
			_ = a.SetEmail(ctx)
		case "passwd":
			_ = a.Passwd(ctx)
		case "theme":
			_ = a.Theme(ctx, args)
		case "avatar":
			_ = a.Avatar(ctx, args)
		case "wallpaper":
			_ = a.Wallpaper(ctx, args)
		case "2fa":
			_ = a.TwoFactor(ctx, args)
		case "contact":
			_ = a.Contact(ctx)
		case "log":
			_ = a.ActivityLog(ctx, args)
		case "delacc":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
