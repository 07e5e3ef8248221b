package cli

import (
	"context"
	"fmt"
	"io"

	"playlist-tool/internal/config"
	"playlist-tool/internal/history"
	"playlist-tool/internal/logger"
	"playlist-tool/internal/playlist"
)

// Formatter reads one playlist, prints it and optionally saves it
type Formatter struct {
	Config   Config
	Settings config.Config
	Log      logger.Logger
	Out      io.Writer
}

// Run executes the configured steps in order: read, record, print, save
func (f *Formatter) Run(ctx context.Context) error {
	f.Log.Debug(component, "reading playlist", map[string]interface{}{"path": f.Config.Input})
	p, err := playlist.Read(f.Config.Input)
	if err != nil {
		return err
	}
	f.Log.Info(component, "playlist loaded", map[string]interface{}{
		"name":   p.Name,
		"type":   p.Type.String(),
		"tracks": len(p.Tracks),
	})

	if f.Settings.RecordHistory {
		f.record(ctx, p)
	}

	if f.Config.Style == playlist.StylePretty {
		if err := p.Info(f.Out); err != nil {
			return err
		}
	}
	if !f.Config.Quiet {
		if err := p.Print(f.Out, f.Config.Style); err != nil {
			return err
		}
	}

	if !f.Config.Save {
		return nil
	}
	path, err := p.Save(playlist.SaveOptions{
		Path:          f.Config.Output,
		Overwrite:     f.Config.Force,
		UseDefaultDir: f.Config.UseDefaultDir,
		SaveDir:       f.Settings.SaveDir,
	})
	if err != nil {
		return err
	}
	f.Log.Info(component, "playlist saved", map[string]interface{}{"path": path})
	_, err = fmt.Fprintf(f.Out, "Saving to: %s\n", path)
	return err
}

// record stores the playlist in the history database. Failures are only logged.
func (f *Formatter) record(ctx context.Context, p *playlist.Playlist) {
	store, err := history.Open(f.Settings.HistoryDB)
	if err != nil {
		f.Log.Warning(component, "history unavailable", map[string]interface{}{"error": err.Error()})
		return
	}
	defer func() { _ = store.Close() }()

	entry := history.Entry{Path: p.File, Name: p.Name, Type: p.Type.String(), Tracks: len(p.Tracks)}
	if err := store.Record(ctx, entry); err != nil {
		f.Log.Warning(component, "failed to record history", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := store.Prune(ctx, f.Settings.HistoryLimit); err != nil {
		f.Log.Warning(component, "failed to prune history", map[string]interface{}{"error": err.Error()})
	}
}
