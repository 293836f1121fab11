package server

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/errgroup"
)

// Run listens on addr, or on PORT from the environment, or on
// DefaultAddress, and serves until ctx is done or the process gets SIGTERM,
// SIGQUIT or SIGINT.
func (server *Server) Run(ctx context.Context, addr ...string) error {
	address, err := resolveAddress(addr)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrapf(err, "listen %s", address)
	}

	return server.Serve(ctx, ln)
}

// Serve is Run on an already open listener. ln is closed on return.
func (server *Server) Serve(ctx context.Context, ln net.Listener) error {
	errGroup, errCtx := errgroup.WithContext(ctx)
	server.ctx = errCtx

	if server.srv == nil {
		server.srv = &fasthttp.Server{}
	}

	server.srv.Handler = server.ServeHTTP
	server.srv.Name = server.serverName
	server.srv.MaxRequestBodySize = server.maxBodySize

	server.Logger().
		Add("addr", ln.Addr().String()).
		Infof("server started")
	server.Debugf("max body size %d, shutdown timeout %s", server.maxBodySize, server.shutdownTimeOut)

	errGroup.Go(func() error {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
		defer signal.Stop(ch)

		reason := "context done"
		select {
		case <-errCtx.Done():
		case sig := <-ch:
			reason = "signal " + sig.String()
		}

		server.Logger().Add("reason", reason).Infof("server shutdown")
		return errors.Wrap(server.shutdown(), "server shutdown: "+reason)
	})

	errGroup.Go(func() error {
		return errors.Wrap(server.srv.Serve(ln), "serve")
	})

	return errGroup.Wait()
}

func (server *Server) shutdown() error {
	if server.shutdownTimeOut <= 0 {
		return server.srv.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), server.shutdownTimeOut)
	defer cancel()

	return server.srv.ShutdownWithContext(ctx)
}
