// Package server runs an http.Handler with graceful shutdown driven by a
// context, suitable for an errgroup next to the other background workers.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// TLS is enabled when SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are set.
package server
