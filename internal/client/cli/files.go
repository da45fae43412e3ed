package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/homeboard/internal/client/activity"
	"github.com/dmitrijs2005/homeboard/internal/client/browse"
	"github.com/dmitrijs2005/homeboard/internal/client/filetype"
	"github.com/dmitrijs2005/homeboard/internal/client/models"
	"github.com/dmitrijs2005/homeboard/internal/client/upload"
)

// formatSize renders a byte count the way the file browser does.
func formatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	}
}

func parseFileID(args []string, usage string, out func(string)) (int64, bool) {
	if len(args) == 0 {
		out(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		out(usage)
		return 0, false
	}
	return id, true
}

func (a *App) printFiles(files []models.FileRecord) {
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files")
		return
	}
	for _, f := range files {
		kind := filetype.Categorize(f.MimeType, f.OriginalFilename)
		if kind == "" {
			kind = "other"
		}
		folder := a.org.FileFolder(f.ID)
		line := fmt.Sprintf("%6d  %-12s %10s  %s", f.ID, kind, formatSize(f.FileSize), f.OriginalFilename)
		if folder != "" {
			line += "  [" + folder + "]"
		}
		fmt.Fprintln(a.out, line)
	}
}

// Files lists every file passing the current type filter.
func (a *App) Files(ctx context.Context) error {
	files, err := a.gateway.ListFiles(ctx)
	if err != nil {
		return a.printErr(err)
	}
	a.printFiles(a.filter.Apply(files, a.org.FileFolder))
	return nil
}

// Search lists files whose original name contains the query.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: search <query>")
		return nil
	}
	files, err := a.gateway.ListFiles(ctx)
	if err != nil {
		return a.printErr(err)
	}
	f := a.filter
	f.Query = strings.Join(args, " ")
	a.printFiles(f.Apply(files, a.org.FileFolder))
	return nil
}

// FilterFiles manages the persistent type filter:
//
//	filter            — show the current selection
//	filter all        — select every type
//	filter none       — clear the selection (matches nothing)
//	filter <id>...    — toggle the named types
func (a *App) FilterFiles(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.printFilter()
		return nil
	}
	switch args[0] {
	case "all":
		a.filter.Types = filetype.FullSelection()
	case "none":
		a.filter.Types = filetype.NewSelection()
	default:
		if a.filter.Types == nil {
			a.filter.Types = filetype.FullSelection()
		}
		for _, id := range args {
			a.filter.Types.Toggle(id)
		}
	}
	a.printFilter()
	return nil
}

func (a *App) printFilter() {
	if a.filter.Types == nil || a.filter.Types.Full() {
		fmt.Fprintln(a.out, "Type filter: all types")
		return
	}
	if len(a.filter.Types) == 0 {
		fmt.Fprintln(a.out, "Type filter: nothing selected (no files will match)")
		return
	}
	var ids []string
	for _, c := range filetype.Categories() {
		if _, ok := a.filter.Types[c.ID]; ok {
			ids = append(ids, c.ID)
		}
	}
	fmt.Fprintf(a.out, "Type filter: %s\n", strings.Join(ids, ", "))
}

// Upload sends a local file through the upload pipeline, showing the
// two-phase progress.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: upload <path>")
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

	record, err := a.gateway.UploadFile(ctx, upload.Input{
		Name:   filepath.Base(path),
		Reader: f,
		Size:   info.Size(),
	}, func(pct int) {
		fmt.Fprintf(a.out, "\rUploading... %3d%%", pct)
	})
	fmt.Fprintln(a.out)
	if err != nil {
		a.bus.Publish(fmt.Sprintf("upload of %s failed", filepath.Base(path)), activity.SeverityError)
		return a.printErr(err)
	}

	fmt.Fprintf(a.out, "Uploaded %s (%s) as #%d\n",
		record.OriginalFilename, formatSize(record.FileSize), record.ID)
	a.bus.Publish(fmt.Sprintf("uploaded %s", record.OriginalFilename), activity.SeveritySuccess)
	return nil
}

// Preview resolves how a file would be shown and prints the target URL.
func (a *App) Preview(ctx context.Context, args []string) error {
	id, ok := parseFileID(args, "Usage: preview <file-id>", func(s string) { fmt.Fprintln(a.out, s) })
	if !ok {
		return nil
	}
	file, err := a.gateway.GetFile(ctx, id)
	if err != nil {
		return a.printErr(err)
	}
	p := browse.ResolvePreview(*file)
	switch p.Kind {
	case browse.PreviewGeneric:
		fmt.Fprintf(a.out, "%s: no inline preview, download at %s\n", file.OriginalFilename, p.URL)
	default:
		fmt.Fprintf(a.out, "%s: %s preview at %s\n", file.OriginalFilename, p.Kind, p.URL)
	}
	return nil
}

// Delete starts the delayed-delete countdown; running the same command
// again before it expires cancels it.
//
//	delete <file-id>
//	delete cancel
func (a *App) Delete(_ context.Context, args []string) error {
	if len(args) == 1 && args[0] == "cancel" {
		a.countdown.Cancel()
		fmt.Fprintln(a.out, "Pending delete cancelled")
		return nil
	}
	id, ok := parseFileID(args, "Usage: delete <file-id> | delete cancel", func(s string) { fmt.Fprintln(a.out, s) })
	if !ok {
		return nil
	}
	if a.countdown.Trigger(id) {
		fmt.Fprintf(a.out, "File #%d will be deleted in %s; run 'delete %d' or 'delete cancel' to keep it\n",
			id, browse.DeleteDelay, id)
	} else {
		fmt.Fprintf(a.out, "Delete of #%d cancelled\n", id)
	}
	return nil
}

// deleteExpired runs on countdown expiry, off the REPL goroutine.
func (a *App) deleteExpired(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.RequestTimeout)
	defer cancel()

	if err := a.gateway.DeleteFile(ctx, id); err != nil {
		fmt.Fprintf(a.out, "\nFailed to delete #%d: %v\n", id, err)
		a.bus.Publish(fmt.Sprintf("failed to delete file #%d", id), activity.SeverityError)
		return
	}
	fmt.Fprintf(a.out, "\nFile #%d deleted\n", id)
	a.bus.Publish(fmt.Sprintf("deleted file #%d", id), activity.SeverityInfo)
}
