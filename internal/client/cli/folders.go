package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/homeboard/internal/client/models"
)

// Folders lists every folder with its category.
func (a *App) Folders(_ context.Context) error {
	folders := a.org.Folders("")
	if len(folders) == 0 {
		fmt.Fprintln(a.out, "No folders")
		return nil
	}
	for _, f := range folders {
		fmt.Fprintf(a.out, "%s  %-8s %s\n", f.ID, f.Category, f.Name)
	}
	return nil
}

// NewFolder creates a folder in one of the two categories.
func (a *App) NewFolder(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Folder name", a.out)
	if err != nil {
		return a.printErr(err)
	}
	category, err := GetSimpleText(a.reader, "Category (games/files)", a.out)
	if err != nil {
		return a.printErr(err)
	}

	folder, err := a.org.AddFolder(ctx, models.FolderDescriptor{
		Name:     name,
		Category: models.FolderCategory(category),
	})
	if err != nil {
		return a.printErr(err)
	}
	fmt.Fprintf(a.out, "Folder %s created (%s)\n", folder.Name, folder.ID)
	return nil
}

// DelFolder removes the folder itself; anything assigned to it becomes
// unassigned.
func (a *App) DelFolder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delfolder <folder-id>")
		return nil
	}
	if err := a.org.DeleteFolder(ctx, args[0]); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Folder deleted; its members are back in 'all'")
	return nil
}

// Move assigns a file to a folder; "all" clears the assignment.
func (a *App) Move(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: move <file-id> <folder-id|all>")
		return nil
	}
	fileID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: move <file-id> <folder-id|all>")
		return nil
	}
	if err := a.org.AssignFileFolder(ctx, fileID, args[1]); err != nil {
		return a.printErr(err)
	}
	fmt.Fprintln(a.out, "Moved")
	return nil
}
