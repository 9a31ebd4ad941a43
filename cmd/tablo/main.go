package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tablo"
	nt "tablo/entity"
	"tablo/server"
	"tablo/store/duck"
	"tablo/store/web"
	"tablo/util"
)

const appName = "tablo"

type options struct {
	layout   string
	file     string
	url      string
	mode     string
	pageSize int
	idField  string
	log      string
	timeout  time.Duration
	addr     string
	count    int
}

var (
	opts    = options{}
	rootCmd = &cobra.Command{
		Use:          appName,
		Short:        "Sortable, paginated table viewer",
		Long:         `tablo shows json rows in a terminal table, sorting in memory or paging from a backend.`,
		SilenceUsage: true,
	}
	viewCmd = &cobra.Command{
		Use:   "view",
		Short: "View rows from a file or url",
		RunE:  view,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve pages of a file over http",
		RunE:  serve,
	}
	sampleCmd = &cobra.Command{
		Use:   "sample",
		Short: "Write a sample layout and optionally sample rows",
		RunE:  sample,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.layout, "layout", "layout.yaml", "Layout file")
	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", "Json or ndjson file of rows")
	rootCmd.PersistentFlags().StringVar(&opts.idField, "id", "id", "Field holding row identity")

	viewCmd.Flags().StringVar(&opts.url, "url", "", "Endpoint serving pages, implies remote mode")
	viewCmd.Flags().StringVar(&opts.mode, "mode", "", "Sorting mode (local, remote), overrides layout")
	viewCmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Rows per page, overrides layout")
	viewCmd.Flags().StringVar(&opts.log, "log", "tablo.log", "Log file")
	viewCmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Page fetch timeout")

	serveCmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Listen address")

	sampleCmd.Flags().IntVar(&opts.count, "count", 500, "Number of sample rows")

	rootCmd.AddCommand(viewCmd, serveCmd, sampleCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func view(cmd *cobra.Command, args []string) (err error) {

	ctx := cmd.Context()

	logFile := util.OpenLog(opts.log, 0644)
	defer util.CloseLog(logFile)
	lgr := &sabot.Sabot{Writer: logFile}

	layout, err := tablo.LoadLayout(opts.layout)
	if err != nil {
		return
	}
	if opts.mode != "" {
		layout.Mode = tablo.Mode(opts.mode)
	}
	if opts.url != "" {
		layout.Mode = tablo.Remote
	}
	if opts.pageSize > 0 {
		layout.PageSize = opts.pageSize
	}

	data, name, closer, err := openData(ctx, layout.Mode, lgr)
	if err != nil {
		return
	}
	defer closer()

	model, err := tablo.NewModel(ctx, layout, data, name, opts.timeout, lgr)
	if err != nil {
		return
	}

	lgr.Info(ctx, "starting viewer", "source", name, "mode", layout.Mode)

	_, err = tea.NewProgram(model).Run()
	err = errors.Wrapf(err, "failed to run viewer")
	return
}

func serve(cmd *cobra.Command, args []string) (err error) {

	ctx := cmd.Context()
	lgr := &sabot.Sabot{Writer: os.Stdout}

	dk, err := loadDuck(ctx, lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	cfg := &server.Config{Addr: opts.addr}
	return cfg.New(dk, lgr).Start(ctx)
}

func sample(cmd *cobra.Command, args []string) (err error) {

	err = tablo.WriteSampleLayout(opts.layout)
	if err != nil || opts.file == "" {
		return
	}

	return writeSampleRows(opts.file, opts.count)
}

// openData gets rows for local mode, or a backend for remote
func openData(ctx context.Context, mode tablo.Mode, lgr nt.Logger) (data tablo.Data, name string, closer func(), err error) {

	closer = func() {}

	if opts.url != "" {
		var clt *web.Client
		clt, err = web.New(opts.url, opts.idField, nil, lgr)
		if err != nil {
			return
		}
		data.Backend = clt
		name = clt.Name()
		return
	}

	dk, err := loadDuck(ctx, lgr)
	if err != nil {
		return
	}
	name = dk.Name()

	if mode == tablo.Remote {
		data.Backend = dk
		closer = dk.Close
		return
	}

	defer dk.Close()
	data.Rows, err = dk.All(ctx)
	return
}

func loadDuck(ctx context.Context, lgr nt.Logger) (dk *duck.Duck, err error) {

	if opts.file == "" {
		err = errors.New("--file is required")
		return
	}

	dk, err = duck.New(opts.idField, lgr)
	if err != nil {
		return
	}

	err = dk.Load(ctx, opts.file)
	if err != nil {
		dk.Close()
		dk = nil
	}
	return
}
