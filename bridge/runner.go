package bridge

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/mcphttp/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Run parses args, then serves until SIGINT or SIGTERM.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	if err := logging.SetupLogger(options.LogFormat, options.LogLevel, nil); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	service, err := New(ctx, options)
	if err != nil {
		return err
	}
	return Serve(ctx, service.HTTP(ctx), nil, options.ShutdownTimeout)
}

// Serve runs srv until ctx is done, then shuts it down within timeout.
// When listener is nil srv listens on its own address.
func Serve(ctx context.Context, srv *http.Server, listener net.Listener, timeout time.Duration) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if listener != nil {
			slog.InfoContext(ctx, "starting mcp http server", "addr", listener.Addr().String())
			err = srv.Serve(listener)
		} else {
			slog.InfoContext(ctx, "starting mcp http server", "addr", srv.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down mcp http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	return group.Wait()
}
