package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/hectorgimenez/d2rlabels/internal/applylog"
	"github.com/hectorgimenez/d2rlabels/internal/compiler"
	"github.com/hectorgimenez/d2rlabels/internal/config"
	"github.com/hectorgimenez/d2rlabels/internal/log"
	"github.com/hectorgimenez/d2rlabels/internal/watch"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	config   string
	settings string
	watch    bool
	load     bool
	output   string
	locales  []string
	table    bool
	open     bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("d2rlabels", pflag.ContinueOnError)
	fs.StringVarP(&o.config, "config", "c", config.DefaultAppPath, "Application config file (game folder, mod name, locales)")
	fs.StringVarP(&o.settings, "settings", "s", config.DefaultSettingsPath, "Label settings file")
	fs.BoolVarP(&o.watch, "watch", "w", false, "Apply again every time the settings file changes")
	fs.BoolVarP(&o.load, "load", "l", false, "Read the labels currently in the game files back into settings instead of applying")
	fs.StringVarP(&o.output, "output", "o", "", "With --load, write the settings to this file instead of stdout")
	fs.StringSliceVarP(&o.locales, "locales", "L", nil, "Override the selected locales, e.g. enUS,deDE or en-US,de")
	fs.BoolVarP(&o.table, "table", "t", false, "Print a summary table of the written files once applied")
	fs.BoolVar(&o.open, "open", false, "Open the strings folder once done")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	o.config = config.Locate(o.config)
	o.settings = config.Locate(o.settings)
	return o, nil
}

func run() error {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	app, err := config.LoadApp(opts.config)
	if err != nil {
		return err
	}
	if len(opts.locales) > 0 {
		app.SelectedLocales = opts.locales
	}
	sel, err := app.Selection()
	if err != nil {
		return err
	}

	logger, closer, err := log.NewLogger(app.Debug, app.LogDir)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	op := applylog.OpApply
	switch {
	case opts.load:
		op = applylog.OpLoad
	case opts.watch:
		op = applylog.OpWatch
	}
	c := compiler.New(logger,
		compiler.WithBackup(app.Backup),
		compiler.WithJournal(applylog.New(app.LogDir, op)),
	)
	ctx := context.Background()

	if opts.load {
		current, err := config.LoadSettings(opts.settings)
		if err != nil {
			logger.Warn("Settings not readable, loading without marker texts", slog.Any("error", err))
		}
		req := compiler.Request{Home: app.HomeDir, ModName: app.ModName, Settings: current, Locales: sel}
		loaded, err := c.Load(ctx, req, printProgress)
		if err != nil {
			return fmt.Errorf("%s: %w", compiler.Title(err, compiler.PhaseLoad), err)
		}
		if opts.output != "" {
			return config.WriteSettings(opts.output, loaded)
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(loaded)
	}

	apply := func(ctx context.Context) error {
		settings, err := config.LoadSettings(opts.settings)
		if err != nil {
			return err
		}
		req := compiler.Request{Home: app.HomeDir, ModName: app.ModName, Settings: settings, Locales: sel}
		res, err := c.Apply(ctx, req, printProgress)
		if err != nil {
			return fmt.Errorf("%s: %w", compiler.Title(err, compiler.PhaseApply), err)
		}
		if opts.table {
			printResult(os.Stdout, res)
		}
		return nil
	}

	if opts.watch {
		return watch.Run(ctx, logger, []string{opts.settings}, apply)
	}

	if err := apply(ctx); err != nil {
		return err
	}

	if opts.open {
		paths, err := compiler.ResolvePaths(app.HomeDir, app.ModName)
		if err != nil {
			return err
		}
		if err := open.Run(paths.Strings); err != nil {
			logger.Warn("Could not open the strings folder", slog.String("path", paths.Strings), slog.Any("error", err))
		}
	}

	return nil
}

func printProgress(step, message string) {
	fmt.Printf("%-10s %s\n", step, message)
}

func printResult(w io.Writer, res *compiler.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Records", "Updates", "Size"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetColumnSeparator("|")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, f := range res.Files {
		name := f.Name
		if f.Created {
			name += " (new)"
		}
		table.Append([]string{
			name,
			strconv.Itoa(f.Records),
			strconv.Itoa(f.Updates),
			humanize.Bytes(uint64(f.Bytes)),
		})
	}
	table.Render()

	fmt.Fprintf(w, "%d rune definitions written, run %s took %s\n", len(res.Highlights), res.RunID, res.Duration)
	for _, name := range res.Skipped {
		fmt.Fprintf(w, "Skipped %s, see the log for details\n", name)
	}
	if res.Backup != "" {
		fmt.Fprintf(w, "Backup: %s\n", filepath.Clean(res.Backup))
	}
}
