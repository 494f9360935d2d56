package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/bedboard/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	interval := flag.Int("interval", 0, "poll interval in minutes, 1-30 (optional)")
	search := flag.String("search", "", "search text filter")
	building := flag.String("building", "", "exact building name filter")
	gender := flag.String("gender", "", "gender filter (Male, Female, DynamicGender)")
	zone := flag.String("zone", "", "campus zone filter (East, West)")
	minBeds := flag.Int("min-beds", 0, "minimum available beds per room")
	once := flag.Bool("once", false, "fetch once, print the grouped view and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:      *configPath,
		PrefsPath:       *prefsPath,
		IntervalMinutes: *interval,
		Once:            *once,
	}

	// Only flags given on the command line override saved filters.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "search":
			opts.Filters.Search = search
		case "building":
			opts.Filters.Building = building
		case "gender":
			opts.Filters.Gender = gender
		case "zone":
			opts.Filters.Zone = zone
		case "min-beds":
			opts.Filters.MinBeds = minBeds
		}
	})

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "bedboard: %v\n", err)
		return 1
	}
	return 0
}
