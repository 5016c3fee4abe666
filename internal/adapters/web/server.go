// Package web serves a single-page application bundle over HTTP:
// the entry document at the root path, every other asset by request path.
// All reads go to disk per request — nothing is cached, so a redeployed
// bundle is live immediately.
package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/corey/spahost/internal/app"
)

// Server serves the static bundle described by app.Paths.
type Server struct {
	paths    *app.Paths
	listener net.Listener
	httpSrv  *http.Server
	addr     string
	stopOnce sync.Once
}

// NewServer creates an HTTP server for the bundle at paths.AssetRoot.
func NewServer(paths *app.Paths) *Server {
	return &Server{paths: paths}
}

// Handler builds the route table. Method-qualified patterns make the mux
// answer 405 for any non-GET verb on its own.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /", s.handleAsset)
	return mux
}

// Start binds host:port and begins serving in a background goroutine.
// Returns once the listener is bound so the caller can report the address.
func (s *Server) Start(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.addr = ln.Addr().String()
	s.httpSrv = &http.Server{Handler: s.Handler()}

	go s.httpSrv.Serve(ln)
	return nil
}

// Stop shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
	})
}

// Addr returns the bound address, e.g. "0.0.0.0:8000".
func (s *Server) Addr() string {
	return s.addr
}

// Port returns the bound port number.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	return s.listener.Addr().(*net.TCPAddr).Port
}

// handleIndex serves the entry document for GET /.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, r, s.paths.Index)
}

// handleAsset resolves the request path inside AssetRoot and streams the
// file. Paths that escape AssetRoot get the same 404 as missing files —
// deny without leaking directory structure.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	target, ok := s.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.serveFile(w, r, target)
}

// resolve canonicalizes a request path against AssetRoot and reports
// whether the result stays inside it. The mux cleans paths before routing,
// but the containment check is enforced here regardless — it is the
// security invariant, not an optimization.
func (s *Server) resolve(requestPath string) (string, bool) {
	target := filepath.Join(s.paths.AssetRoot, filepath.FromSlash(requestPath))
	target = filepath.Clean(target)

	rel, err := filepath.Rel(s.paths.AssetRoot, target)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return target, true
}

// serveFile streams a regular file with a content type inferred from its
// extension. Missing files and directories both answer 404.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, path, info.ModTime(), f)
}
