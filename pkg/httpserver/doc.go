// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling and structured logging hooks for the catalog API entrypoint.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
package httpserver
