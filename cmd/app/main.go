package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/villert/popthings/internal"
	"github.com/villert/popthings/internal/convert"
	"github.com/villert/popthings/internal/history"
	"github.com/villert/popthings/internal/launcher"
	"github.com/villert/popthings/internal/mcpserver"
	"github.com/villert/popthings/internal/placeholder"
	"github.com/villert/popthings/internal/watch"
	pkgconfig "github.com/villert/popthings/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to config file",
		Value:   "config/config.yaml",
		Sources: cli.EnvVars("POPTHINGS_CONFIG_FILE"),
	}
}

// readDocument returns the template text from a file path, or from stdin
// when the path is "-".
func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// resolvePlaceholders collects placeholder values from --set flags and, when
// allowed, prompts interactively for the rest.
func resolvePlaceholders(text, symbol string, sets []string, noInput bool) (map[string]string, error) {
	values := make(map[string]string)
	for _, kv := range sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, want name=value", kv)
		}
		values[name] = value
	}

	var missing []string
	for _, name := range placeholder.Names(text, symbol) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return values, nil
	}
	if noInput {
		return nil, fmt.Errorf("missing placeholder values: %s", strings.Join(missing, ", "))
	}

	prompted, err := placeholder.Prompt(missing, os.Stdin, os.Stderr)
	if err != nil {
		return nil, err
	}
	for name, value := range prompted {
		values[name] = value
	}
	return values, nil
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	infile := cmd.Args().First()
	if infile == "" {
		return fmt.Errorf("usage: popthings convert <template file | ->")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	symbol := cfg.Placeholder.Symbol

	text, err := readDocument(infile)
	if err != nil {
		return err
	}

	values, err := resolvePlaceholders(text, symbol, cmd.StringSlice("set"), cmd.Bool("no-input"))
	if err != nil {
		return err
	}
	text, err = placeholder.Apply(text, symbol, values)
	if err != nil {
		return err
	}

	res, err := convert.Document(text)
	if err != nil {
		return err
	}

	recordHistory(cfg, infile, res)

	if cmd.Bool("json") {
		fmt.Println(string(res.JSON))
	} else {
		fmt.Println(res.URL)
	}
	if cmd.Bool("open") {
		return launcher.Open(res.URL)
	}
	return nil
}

// recordHistory logs the conversion to the history database; failures are
// reported but never abort the conversion.
func recordHistory(cfg *internal.Config, source string, res *convert.Result) {
	if cfg.History.Path == "" {
		return
	}
	db, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Warn("history unavailable", slog.String("error", err.Error()))
		return
	}
	defer db.Close()

	projects, todos := res.Counts()
	err = db.Record(history.Entry{
		Source:    source,
		Projects:  projects,
		ToDos:     todos,
		URLLength: len(res.URL),
	})
	if err != nil {
		slog.Warn("history record failed", slog.String("error", err.Error()))
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.Run(ctx,
		internal.WithConfig(cfg),
		internal.WithWatcher(cmd.Bool("watch")),
	)
}

func runWatch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Templates.Path == "" {
		return fmt.Errorf("templates.path is not configured")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	conv := &watch.Converter{
		Symbol: cfg.Placeholder.Symbol,
		Launch: cfg.Templates.Launch,
		Logger: logger,
	}
	if cfg.History.Path != "" {
		hist, err := history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("history unavailable", slog.String("error", err.Error()))
		} else {
			defer hist.Close()
			conv.Hist = hist
		}
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watch.Watch(ctx, cfg.Templates.Path, conv)
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return mcpserver.New(cfg.Placeholder.Symbol).ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:  "popthings",
		Usage: "Convert TaskPaper templates into Things projects",
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Convert a template file and print the Things URL",
				ArgsUsage: "<template file | ->",
				Action:    runConvert,
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "open",
						Usage: "Open the Things URL after conversion",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the JSON payload instead of the URL",
					},
					&cli.BoolFlag{
						Name:  "no-input",
						Usage: "Fail instead of prompting for placeholder values",
					},
					&cli.StringSliceFlag{
						Name:  "set",
						Usage: "Placeholder value as name=value (repeatable)",
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Run the HTTP conversion API",
				Action: runServe,
				Flags: []cli.Flag{
					configFlag(),
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Also watch the configured templates directory",
					},
				},
			},
			{
				Name:   "watch",
				Usage:  "Watch the templates directory and convert on change",
				Action: runWatch,
				Flags:  []cli.Flag{configFlag()},
			},
			{
				Name:   "mcp",
				Usage:  "Run the MCP server on stdio",
				Action: runMCP,
				Flags:  []cli.Flag{configFlag()},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
