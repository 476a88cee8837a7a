package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/lululau/datepick/internal/calendar"
	"github.com/lululau/datepick/internal/config"
	"github.com/lululau/datepick/internal/holidays"
	"github.com/lululau/datepick/internal/locale"
	"github.com/lululau/datepick/internal/logfields"
	"github.com/lululau/datepick/internal/picker"
	"github.com/lululau/datepick/internal/render"
	"github.com/lululau/datepick/internal/tui"
)

// CLI flags override values read from --config.
type CLI struct {
	Config       string `short:"c" help:"YAML configuration file." type:"path"`
	Format       string `short:"f" help:"Date pattern, e.g. DD-MM-YYYY or YYYY/M/D."`
	Lang         string `short:"l" help:"Language key (EN, FR, ZH)."`
	Default      string `short:"d" help:"Initial value, written in the date pattern."`
	Before       string `help:"Disable every day before this date."`
	After        string `help:"Disable every day after this date."`
	AutoPop      bool   `short:"a" help:"Open the calendar grid on start."`
	Lunar        bool   `help:"Show Chinese lunar labels under day numbers."`
	HolidaysFile string `help:"Holiday JSON data file; defaults to the user cache." type:"path"`
	Plain        bool   `short:"n" help:"Render once and exit instead of starting the picker."`
	Year         bool   `short:"y" help:"Render the whole year (implies --plain)."`
	NoColor      bool   `short:"N" help:"Disable all color output."`
	Debug        bool   `help:"Log at debug level."`
	LogFile      string `help:"Write logs to this file; interactive mode logs nowhere otherwise." type:"path"`

	Args []int `arg:"" optional:"" help:"[year] [month] to render (implies --plain)."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("datepick"),
		kong.Description("Pick a date in the terminal and print it in the configured pattern."),
		kong.UsageOnError(),
	)

	if err := run(&cli); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	if cli.NoColor {
		render.SetNoColor(true)
		tui.SetNoColor(true)
	}

	nonInteractive := cli.Plain || cli.Year || len(cli.Args) > 0
	logger, closeLog, err := newLogger(cli, nonInteractive)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	cfg, err := resolveConfig(cli)
	if err != nil {
		return err
	}

	bundle, err := locale.NewBundle()
	if err != nil {
		return err
	}
	if !bundle.Supports(cfg.Lang) {
		logger.Warn("unsupported language, falling back to EN",
			logfields.Lang(cfg.Lang),
			slog.Any("available", bundle.Languages()),
		)
	}

	opts, err := cfg.PickerOptions()
	if err != nil {
		return err
	}
	opts = append(opts,
		picker.WithLocales(bundle),
		picker.WithLogger(logger),
		picker.WithOnChange(func(text string) {
			logger.Info("value changed", logfields.Text(text))
		}),
		picker.WithOnError(func(text string) {
			logger.Info("unparsable input", logfields.Text(text), logfields.Pattern(cfg.DateFormat))
		}),
	)
	ctrl, err := picker.New(opts...)
	if err != nil {
		return err
	}

	svcOpts := []calendar.Option{calendar.WithLunar(cfg.Lunar)}
	if table := loadHolidays(cfg.HolidaysFile, logger); table != nil {
		svcOpts = append(svcOpts, calendar.WithHolidays(table))
	}
	service := calendar.NewService(svcOpts...)

	if nonInteractive {
		req, err := parseRequest(ctrl.Frame(), cli.Year, cli.Args)
		if err != nil {
			return err
		}
		return render.RunPlain(render.PlainOptions{
			Service:  service,
			Locales:  bundle,
			Lang:     ctrl.Lang(),
			Request:  req,
			Disabled: ctrl.DisabledDays(),
			Selected: ctrl.State().Selected,
		})
	}

	state, err := tui.Run(tui.Options{
		Controller: ctrl,
		Service:    service,
		Locales:    bundle,
	})
	if err != nil {
		return err
	}
	if state.Text != "" {
		fmt.Println(state.Text)
	}
	return nil
}

// resolveConfig reads --config, when given, and lays the flags over it.
func resolveConfig(cli *CLI) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cli.Config != "" {
		loaded, err := config.Load(cli.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cli.Format != "" {
		cfg.DateFormat = cli.Format
	}
	if cli.Lang != "" {
		cfg.Lang = cli.Lang
	}
	if cli.Default != "" {
		cfg.DefaultValue = cli.Default
	}
	if cli.Before != "" {
		cfg.DisabledDays.Before = cli.Before
	}
	if cli.After != "" {
		cfg.DisabledDays.After = cli.After
	}
	if cli.HolidaysFile != "" {
		cfg.HolidaysFile = cli.HolidaysFile
	}
	cfg.AutoPop = cfg.AutoPop || cli.AutoPop
	cfg.Lunar = cfg.Lunar || cli.Lunar
	cfg.Normalize()
	return cfg, nil
}

func newLogger(cli *CLI, nonInteractive bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	var out io.Writer = io.Discard
	closeFn := func() {}
	switch {
	case cli.LogFile != "":
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case nonInteractive:
		out = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}

// loadHolidays reads path, or the user cache while it is fresh. Missing data
// only costs the holiday colors.
func loadHolidays(path string, logger *slog.Logger) holidays.Table {
	if path != "" {
		table, err := holidays.LoadFromFile(path)
		if err != nil {
			logger.Warn("failed to load holiday file", logfields.Path(path), logfields.Error(err))
			return nil
		}
		return table
	}

	cachePath, err := holidays.GetCachePath()
	if err != nil {
		return nil
	}
	valid, err := holidays.IsCacheValid(cachePath, time.Now())
	if err != nil || !valid {
		logger.Debug("holiday cache unavailable", logfields.Path(cachePath))
		return nil
	}
	table, err := holidays.LoadFromCache()
	if err != nil {
		logger.Warn("failed to read holiday cache", logfields.Path(cachePath), logfields.Error(err))
		return nil
	}
	return table
}
