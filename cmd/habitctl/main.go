package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitctl/internal/cli"
	"github.com/julianstephens/habitctl/internal/config"
	"github.com/julianstephens/habitctl/internal/dates"
	"github.com/julianstephens/habitctl/internal/errdefs"
	"github.com/julianstephens/habitctl/internal/output"
	"github.com/julianstephens/habitctl/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Store file path." type:"path"`
	Today   string `help:"Override the reference date (YYYY-MM-DD)."`
	Format  string `help:"Output format (table|json)."`
	NoColor bool   `name:"no-color" help:"Disable colored output."`

	Init      cli.InitCmd      `cmd:"" help:"Create an empty store."`
	Add       cli.AddCmd       `cmd:"" help:"Add a new habit."`
	List      cli.ListCmd      `cmd:"" help:"List habits."`
	Show      cli.ShowCmd      `cmd:"" help:"Show one habit and its check-ins."`
	Archive   cli.ArchiveCmd   `cmd:"" help:"Archive a habit."`
	Unarchive cli.UnarchiveCmd `cmd:"" help:"Unarchive a habit."`
	Checkin   cli.CheckinCmd   `cmd:"" help:"Record progress for a habit."`
	Status    cli.StatusCmd    `cmd:"" help:"Show today's and this week's progress."`
	Stats     cli.StatsCmd     `cmd:"" help:"Show streaks and success rates."`
	Due       cli.DueCmd       `cmd:"" help:"List habits still due."`
	Recap     cli.RecapCmd     `cmd:"" help:"Completion percentages over a range."`
	Export    cli.ExportCmd    `cmd:"" help:"Export habits and check-ins."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage store snapshots."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run storage health checks."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive check-in screen."`
}

func newStore(path string) storage.Provider {
	switch {
	case strings.HasSuffix(path, ".db"), strings.HasSuffix(path, ".sqlite"):
		return storage.NewSQLiteStore(path)
	default:
		return storage.NewJSONStore(path)
	}
}

func main() {
	config.LoadEnv()

	ctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Local habit tracking CLI"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	cfg, err := config.LoadFile(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config file: %v\n", err)
		os.Exit(2)
	}

	today := config.ResolveToday(CLI.Today, dates.Today())
	if _, err := dates.Parse(today, "today"); err != nil {
		fail(err)
	}

	format := CLI.Format
	if format == "" {
		format = cfg.Format
	}
	if format == "" {
		format = cli.FormatTable
	}
	if format != cli.FormatTable && format != cli.FormatJSON {
		fail(errdefs.InvalidInput("invalid format: %s", format))
	}

	store := newStore(config.ResolveDBPath(CLI.DB, cfg))
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Today:  today,
		Format: format,
		Styler: output.NewStyler(config.ColorEnabled(CLI.NoColor, cfg)),
		Out:    os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(errdefs.ExitCode(err))
}
