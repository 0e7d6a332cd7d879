package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/menugen/internal/core/domain"
)

// Version is the MCP server version.
const Version = "0.1.0"

// httpRateFactor scales the generate budget for raw HTTP requests.
// One tool call spans several protocol messages.
const httpRateFactor = 10

// Options configures a Server.
type Options struct {
	// UserID is the user all tools act for.
	UserID string

	// RequestsPerSecond limits generate_menu calls. HTTP requests get
	// httpRateFactor times the budget.
	// Zero or less disables limiting.
	RequestsPerSecond float64

	// Burst is the limiter's bucket size.
	Burst int
}

// Server is the MCP server for menugen.
type Server struct {
	ports  *Ports
	userID string
	server *mcp.Server

	generateLimiter *rate.Limiter
	httpLimiter     *rate.Limiter
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	userID := opts.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}

	generateLimiter := rate.NewLimiter(rate.Inf, 0)
	httpLimiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := max(opts.Burst, 1)
		generateLimiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
		httpLimiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond*httpRateFactor), burst*httpRateFactor)
	}

	impl := &mcp.Implementation{
		Name:    "menugen",
		Version: Version,
	}

	s := &Server{
		ports:           ports,
		userID:          userID,
		server:          mcp.NewServer(impl, nil),
		generateLimiter: generateLimiter,
		httpLimiter:     httpLimiter,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler, rate limited per server.
func (s *Server) Handler() http.Handler {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
	return s.rateLimit(handler)
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// rateLimit rejects requests beyond the limiter's rate with 429.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.httpLimiter.Allow() {
			http.Error(w, ErrRateLimited.Error(), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
