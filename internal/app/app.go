package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/five82/bedboard/internal/config"
	"github.com/five82/bedboard/internal/housing"
	"github.com/five82/bedboard/internal/logging"
	"github.com/five82/bedboard/internal/prefs"
	"github.com/five82/bedboard/internal/rooms"
	"github.com/five82/bedboard/internal/state"
	"github.com/five82/bedboard/internal/ui"
)

// FilterFlags are command-line filter overrides. Nil fields keep the saved
// preference.
type FilterFlags struct {
	Search   *string
	Building *string
	Gender   *string
	Zone     *string
	MinBeds  *int
}

// Options configure the bedboard application.
type Options struct {
	ConfigPath      string
	PrefsPath       string // empty uses default ~/.config/bedboard/prefs.toml
	IntervalMinutes int    // zero uses saved prefs, then config
	Filters         FilterFlags
	Once            bool      // fetch once, print a report and exit
	Out             io.Writer // report destination; nil is stdout
}

// Run boots bedboard until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	client, err := housing.NewClient(cfg.FeedURL, cfg.RequestTimeout, logger.Named("housing"))
	if err != nil {
		return fmt.Errorf("init housing client: %w", err)
	}

	filter := resolveFilter(userPrefs.Filters, opts.Filters)
	interval := resolveInterval(opts.IntervalMinutes, userPrefs.IntervalMinutes, cfg.IntervalMinutes)

	store := &state.Store{}
	session := NewSession(client, store, logger.Named("session"), interval)

	logger.Info("bedboard starting",
		zap.String("feed_url", client.FeedURL()),
		zap.Int("interval_minutes", session.Interval()),
		zap.Bool("once", opts.Once),
	)

	if opts.Once {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return RunOnce(ctx, session, store, filter, out)
	}

	session.Start(ctx)
	defer session.Stop()

	return ui.Run(ui.Options{
		Context:   ctx,
		Session:   session,
		Store:     store,
		Filter:    filter,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
		LogPath:   cfg.LogPath(),
		PollTick:  session.TickEvery(),
	})
}

// RunOnce performs a single fetch and writes the grouped view to w. A failed
// fetch is returned as an error.
func RunOnce(ctx context.Context, session *Session, store *state.Store, filter rooms.Filter, w io.Writer) error {
	session.Refresh(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	snap := store.Snapshot()
	if snap.LastError != nil {
		return fmt.Errorf("fetch rooms: %w", snap.LastError)
	}

	grouped := rooms.Build(snap.Rooms, filter)
	if _, err := io.WriteString(w, renderReport(grouped, snap, filter)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// resolveFilter overlays command-line flags on the saved filters.
func resolveFilter(saved prefs.Filters, flags FilterFlags) rooms.Filter {
	f := rooms.Filter{
		Search:   saved.Search,
		Building: saved.Building,
		Gender:   saved.Gender,
		Zone:     rooms.ParseZone(saved.Zone),
		MinBeds:  saved.MinBeds,
	}
	if flags.Search != nil {
		f.Search = *flags.Search
	}
	if flags.Building != nil {
		f.Building = *flags.Building
	}
	if flags.Gender != nil {
		f.Gender = *flags.Gender
	}
	if flags.Zone != nil {
		f.Zone = rooms.ParseZone(*flags.Zone)
	}
	if flags.MinBeds != nil {
		f.MinBeds = *flags.MinBeds
	}
	if f.MinBeds < 0 {
		f.MinBeds = 0
	}
	return f
}

// resolveInterval picks the first positive of flag, saved and configured
// minutes. NewSession clamps the result.
func resolveInterval(flag, saved, configured int) int {
	for _, v := range []int{flag, saved, configured} {
		if v > 0 {
			return v
		}
	}
	return config.DefaultIntervalMinutes
}
