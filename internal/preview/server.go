// Package preview serves a generated header the way the firmware does,
// so a page can be checked in a browser before flashing.
package preview

import (
	"context"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Asset is the content served by the preview server.
type Asset struct {
	// Data is served as is on "/".
	Data []byte
	// Source is the header text served on "/header.h".
	Source []byte

	ContentType string
	// ContentEncoding is sent with Data unless empty (e.g. "gzip" for pre-compressed pages).
	ContentEncoding string
}

// Server is the preview HTTP server.
type Server struct {
	addr    string
	handler http.Handler
	logger  *logrus.Logger
}

// New creates a preview server for asset listening on addr.
func New(addr string, asset Asset, logger *logrus.Logger) *Server {
	s := &Server{
		addr:   addr,
		logger: logger,
	}
	s.handler = s.routes(asset)
	return s
}

func (s *Server) routes(asset Asset) http.Handler {
	r := mux.NewRouter()
	r.Use(LoggerMiddleware(s.logger), CORS)

	r.Handle("/", Index(asset)).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/header.h", gziphandler.GzipHandler(Source(asset.Source))).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/health", Health()).Methods(http.MethodGet)

	return r
}

// Handler returns the router of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadTimeout:       time.Second * 15,
		ReadHeaderTimeout: time.Second * 15,
		WriteTimeout:      time.Second * 15,
		IdleTimeout:       time.Second * 30,
		MaxHeaderBytes:    4096,
	}

	errs := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.addr).Info("Serving preview")
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down preview")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; err != http.ErrServerClosed {
		return err
	}
	return nil
}
