package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
)

func (a *App) Platforms(_ context.Context) error {
	platforms := a.org.Platforms()
	if len(platforms) == 0 {
		fmt.Fprintln(a.out, "No platforms")
		return nil
	}
	for i, p := range platforms {
		line := fmt.Sprintf("%2d. %s (%s)", i+1, p.Name, p.ID)
		if p.URL != "" {
			line += "  " + p.URL
		}
		if p.FolderID != "" {
			line += "  [" + p.FolderID + "]"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) AddPlatform(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Platform name", a.out)
	if err != nil {
		return a.printErr(err)
	}
	url, err := GetSimpleText(a.reader, "URL (optional)", a.out)
	if err != nil {
		return a.printErr(err)
	}

	p, err := a.org.AddPlatform(ctx, models.Platform{Name: name, URL: url})
	if err != nil {
		return a.printErr(err)
	}
	fmt.Fprintf(a.out, "Platform %s added (%s)\n", p.Name, p.ID)
	a.bus.Publish(fmt.Sprintf("added platform %s", p.Name), activity.SeveritySuccess)
	return nil
}

func (a *App) DelPlatform(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delplatform <id>")
		return nil
	}
	if err := a.org.DeletePlatform(ctx, args[0]); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Platform deleted")
	return nil
}

// Reorder splices a platform or game to a new position (1-based).
//
//	reorder platform <id> <position>
//	reorder game <id> <position>
func (a *App) Reorder(ctx context.Context, args []string) error {
	usage := "Usage: reorder platform|game <id> <position>"
	if len(args) < 3 {
		fmt.Fprintln(a.out, usage)
		return nil
	}
	pos, err := strconv.Atoi(args[2])
	if err != nil || pos < 1 {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	switch args[0] {
	case "platform":
		err = a.org.ReorderPlatforms(ctx, args[1], pos-1)
	case "game":
		err = a.org.ReorderGames(ctx, args[1], pos-1)
	default:
		fmt.Fprintln(a.out, usage)
		return nil
	}
	if err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Reordered")
	return nil
}

func (a *App) Games(_ context.Context) error {
	games := a.org.Games()
	if len(games) == 0 {
		fmt.Fprintln(a.out, "No games")
		return nil
	}
	for i, g := range games {
		line := fmt.Sprintf("%2d. %s (%s)", i+1, g.Name, g.ID)
		if g.Platform != "" {
			line += "  on " + g.Platform
		}
		if g.FolderID != "" {
			line += "  [" + g.FolderID + "]"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) AddGame(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Game name", a.out)
	if err != nil {
		return a.printErr(err)
	}
	platform, err := GetSimpleText(a.reader, "Platform (optional)", a.out)
	if err != nil {
		return a.printErr(err)
	}

	g, err := a.org.AddGame(ctx, models.Game{Name: name, Platform: platform})
	if err != nil {
		return a.printErr(err)
	}
	fmt.Fprintf(a.out, "Game %s added (%s)\n", g.Name, g.ID)
	a.bus.Publish(fmt.Sprintf("added game %s", g.Name), activity.SeveritySuccess)
	return nil
}

func (a *App) DelGame(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delgame <id>")
		return nil
	}
	if err := a.org.DeleteGame(ctx, args[0]); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Game deleted")
	return nil
}
