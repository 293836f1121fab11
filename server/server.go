package server

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/iostrovok/trimothy/logger"
	"github.com/iostrovok/trimothy/logger/config"
	"github.com/iostrovok/trimothy/logger/level"
)

const (
	DefaultAddress         = ":8080"
	DefaultMaxBodySize     = 4 << 20
	DefaultShutdownTimeOut = 5 * time.Second
)

var ErrTooManyAddresses = errors.New("too many addresses")

type Server struct {
	ctx context.Context

	srv *fasthttp.Server

	logConfig *config.Config

	// shutdownTimeOut bounds the graceful shutdown, zero waits forever
	shutdownTimeOut time.Duration

	maxBodySize int
	serverName  string
	auth        *BaseAuth

	requests atomic.Uint64
}

func New() *Server {
	return &Server{
		ctx:             context.Background(),
		logConfig:       config.NewConfig(),
		maxBodySize:     DefaultMaxBodySize,
		shutdownTimeOut: DefaultShutdownTimeOut,
		serverName:      "trimothy",
	}
}

func (server *Server) SetServerName(name string) *Server {
	server.serverName = name
	return server
}

func (server *Server) ShutdownTimeOut() time.Duration {
	return server.shutdownTimeOut
}

func (server *Server) SetShutdownTimeOut(timeout time.Duration) *Server {
	server.shutdownTimeOut = timeout
	return server
}

func (server *Server) MaxBodySize() int {
	return server.maxBodySize
}

// SetMaxBodySize limits request bodies. Non-positive sizes restore the
// default.
func (server *Server) SetMaxBodySize(size int) *Server {
	if size <= 0 {
		size = DefaultMaxBodySize
	}

	server.maxBodySize = size
	return server
}

// SetBaseAuth requires basic credentials on every route. nil disables it.
func (server *Server) SetBaseAuth(auth *BaseAuth) *Server {
	server.auth = auth
	return server
}

func (server *Server) SetLoggerWriter(w io.Writer) *Server {
	server.logConfig.SetWriter(w)
	return server
}

func (server *Server) SetLogLevel(lvl level.Level) *Server {
	server.logConfig.SetLevel(lvl)
	return server
}

func (server *Server) LogLevel() level.Level {
	return server.logConfig.Level()
}

// Logger returns a fresh logger carrying the server configuration.
func (server *Server) Logger() *logger.Logger {
	return logger.New().
		SetConfig(server.logConfig).
		Add("server", server.serverName)
}

func (server *Server) Debugf(format string, data ...any) {
	if server.logConfig.Enabled(level.DebugLevel) {
		server.Logger().Debugf(format, data...)
	}
}

// Requests returns the number of requests served so far.
func (server *Server) Requests() uint64 {
	return server.requests.Load()
}

func resolveAddress(addr []string) (string, error) {
	switch len(addr) {
	case 0:
		if port := os.Getenv("PORT"); port != "" {
			return ":" + port, nil
		}
		return DefaultAddress, nil
	case 1:
		if addr[0] == "" {
			return resolveAddress(nil)
		}
		return addr[0], nil
	default:
		return "", errors.Wrapf(ErrTooManyAddresses, "%d given", len(addr))
	}
}
