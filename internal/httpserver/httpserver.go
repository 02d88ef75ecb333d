package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Run wires the handlers, starts the job scheduler and the HTTP server, then
// blocks until SIGINT/SIGTERM or a listener failure and shuts both down.
func (srv *HTTPServer) Run() error {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := srv.mapHandlers(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.Run.mapHandlers: %v", err)
		return err
	}

	if srv.scheduler != nil {
		srv.scheduler.Start(ctx)
		srv.l.Info(ctx, "Job scheduler started")
	}

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:      srv.gin,
		ReadTimeout:  srv.readTimeout,
		WriteTimeout: srv.writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	srv.l.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-ch:
		srv.l.Infof(ctx, "Received %s, shutting down", sig)
	case runErr = <-errCh:
		srv.l.Errorf(ctx, "internal.httpserver.Run.ListenAndServe: %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, srv.shutdownTimeout)
	defer cancel()

	if srv.scheduler != nil {
		if err := srv.scheduler.Stop(shutdownCtx); err != nil {
			srv.l.Errorf(ctx, "internal.httpserver.Run.scheduler.Stop: %v", err)
		}
	}
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.Run.Shutdown: %v", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}
