package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/five82/storefront/internal/app"
	"github.com/five82/storefront/internal/config"
)

type CLI struct {
	Browse     BrowseCmd     `cmd:"" default:"1" help:"Browse the catalog in the terminal UI"`
	List       ListCmd       `cmd:"" aliases:"ls" help:"List products with search, category, sort and paging"`
	Show       ShowCmd       `cmd:"" help:"Show one product"`
	Categories CategoriesCmd `cmd:"" help:"List product categories"`
	Fav        FavCmd        `cmd:"" help:"Toggle a favorite, or list favorites"`
	Theme      ThemeCmd      `cmd:"" help:"Show or change the light/dark theme"`
	Logs       LogsCmd       `cmd:"" help:"Print the end of the log file"`

	Config  string `short:"c" env:"STOREFRONT_CONFIG" help:"Path to config.toml"`
	APIURL  string `name:"api-url" env:"STOREFRONT_API_URL" help:"Product API base URL"`
	Storage string `env:"STOREFRONT_STORAGE" help:"Path to the local storage file"`
	LogFile string `name:"log-file" help:"Log file path (- disables logging)"`
	Debug   bool   `help:"Log at debug level"`

	ctx        context.Context
	out        io.Writer
	detectDark func() bool
	session    *app.Session
}

func (c *CLI) AfterApply(kctx *kong.Context) error {
	session, err := app.Open(app.Options{
		ConfigPath: c.Config,
		Overrides: config.Overrides{
			APIURL:      c.APIURL,
			StoragePath: c.Storage,
			LogFile:     c.LogFile,
			Debug:       c.Debug,
		},
		DetectDark: c.detectDark,
	})
	if err != nil {
		return err
	}
	c.session = session

	kctx.Bind(&Globals{
		Ctx:     c.ctx,
		Session: session,
		Out:     c.out,
	})
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, detectDark func() bool) int {
	cli := CLI{ctx: ctx, out: stdout, detectDark: detectDark}
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("storefront"),
		kong.Description("Terminal product catalog browser"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "storefront: %v\n", err)
		return 2
	}

	kctx, err := parser.Parse(args)
	defer func() {
		if cli.session != nil {
			_ = cli.session.Close()
		}
	}()
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "storefront: %v\n", err)
		return 2
	}

	if err := kctx.Run(); err != nil {
		fmt.Fprintf(stderr, "storefront: %v\n", err)
		return 1
	}
	return 0
}
