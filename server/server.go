// Package server answers page requests over http using the _sort, _order,
// _start and _end query protocol.
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	nt "tablo/entity"
)

const (
	defaultWindow = 30
	shutdownWait  = 5 * time.Second
)

// Backend supplies sorted windows of rows and a total.
type Backend interface {
	FetchPage(ctx context.Context, qry nt.Query) (rows []nt.Row, err error)
	Count(ctx context.Context) (count int, err error)
}

// Config is the server's options.
type Config struct {
	Addr      string `yaml:"addr"`
	MaxWindow int    `yaml:"max_window,omitempty"`
}

// Server serves GET /api/rows.
type Server struct {
	echo      *echo.Echo
	backend   Backend
	addr      string
	maxWindow int
	logger    nt.Logger
}

func (cfg *Config) New(backend Backend, lgr nt.Logger) (svr *Server) {

	maxWindow := cfg.MaxWindow
	if maxWindow <= 0 {
		maxWindow = 1000
	}

	svr = &Server{
		echo:      echo.New(),
		backend:   backend,
		addr:      cfg.Addr,
		maxWindow: maxWindow,
		logger:    lgr,
	}

	svr.echo.HideBanner = true
	svr.echo.HidePort = true
	svr.echo.Use(middleware.Recover())
	svr.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	svr.echo.Use(svr.logRequest)

	svr.echo.GET("/api/rows", svr.rows)

	return
}

// Handler exposes the router, for testing
func (svr *Server) Handler() http.Handler {
	return svr.echo
}

// Start listens until ctx is done.
func (svr *Server) Start(ctx context.Context) (err error) {

	go func() {
		<-ctx.Done()

		sdCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()

		err := svr.echo.Shutdown(sdCtx)
		if err != nil {
			svr.logger.Error(sdCtx, "failed to shutdown", err)
		}
	}()

	svr.logger.Info(ctx, "server listening", "addr", svr.addr)

	err = svr.echo.Start(svr.addr)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	err = errors.Wrapf(err, "failed to serve on %s", svr.addr)
	return
}

// unexported

func (svr *Server) rows(c echo.Context) (err error) {

	ctx := c.Request().Context()

	qry, err := svr.parseQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows, err := svr.backend.FetchPage(ctx, qry)
	if err != nil {
		var netErr *nt.NetworkError
		if errors.As(err, &netErr) {
			svr.logger.Error(ctx, "failed to fetch page", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch page")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	count, err := svr.backend.Count(ctx)
	if err != nil {
		svr.logger.Error(ctx, "failed to count rows", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to count rows")
	}

	records := make([]map[string]any, len(rows))
	for i, row := range rows {
		record := make(map[string]any, len(row.Values))
		for key, val := range row.Values {
			record[key] = val.Raw
		}
		records[i] = record
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrapf(err, "failed to encode rows")
	}

	c.Response().Header().Set("X-Total-Count", strconv.Itoa(count))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

func (svr *Server) parseQuery(c echo.Context) (qry nt.Query, err error) {

	qry.SortField = c.QueryParam("_sort")
	if qry.SortField == "" {
		err = errors.New("_sort is required")
		return
	}

	order := c.QueryParam("_order")
	if order == "" {
		order = string(nt.Asc)
	}
	qry.SortOrder, err = nt.ParseDirection(order)
	if err != nil {
		return
	}

	qry.OffsetStart, err = intParam(c, "_start", 0)
	if err != nil {
		return
	}
	qry.OffsetEnd, err = intParam(c, "_end", qry.OffsetStart+defaultWindow)
	if err != nil {
		return
	}

	switch {
	case qry.OffsetStart < 0:
		err = errors.Errorf("_start must not be negative")
	case qry.OffsetEnd < qry.OffsetStart:
		err = errors.Errorf("_end must not precede _start")
	case qry.Limit() > svr.maxWindow:
		err = errors.Errorf("window of %d exceeds %d", qry.Limit(), svr.maxWindow)
	}
	return
}

func (svr *Server) logRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {

		start := time.Now()
		err = next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		svr.logger.Info(req.Context(), "request",
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"uri", req.RequestURI,
			"status", c.Response().Status,
			"elapsed", time.Since(start).String(),
		)
		return nil
	}
}

func intParam(c echo.Context, name string, fallback int) (val int, err error) {

	raw := c.QueryParam(name)
	if raw == "" {
		val = fallback
		return
	}

	val, err = strconv.Atoi(raw)
	err = errors.Wrapf(err, "%s must be an integer", name)
	return
}
