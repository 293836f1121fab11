package main

import (
	"github.com/spf13/cobra"

	"github.com/iostrovok/trimothy/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the operations over HTTP",
		Long: `Serve runs every operation as POST /v1/<op>. The request body is the input
and the response body the result. Query arguments: text=1, lossy=1, cutset=...
GET /v1/ops lists the operations.

The listen address falls back to :$PORT and then to :8080.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			srv := newServer(cfg, cmd)
			lg.Add("max_body_size", srv.MaxBodySize()).Debugf("starting server")

			return srv.Run(cmd.Context(), cfg.Addr)
		},
	}

	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().Duration("shutdown-timeout", server.DefaultShutdownTimeOut, "graceful shutdown limit, 0 waits forever")
	cmd.Flags().Int("max-body-size", server.DefaultMaxBodySize, "request body limit in bytes")

	return cmd
}

func newServer(cfg *Config, cmd *cobra.Command) *server.Server {
	srv := server.New().
		SetServerName("trimothy/" + version).
		SetLogLevel(cfg.Level()).
		SetLoggerWriter(cmd.ErrOrStderr()).
		SetShutdownTimeOut(cfg.ShutdownTimeout).
		SetMaxBodySize(cfg.MaxBodySize)

	if len(cfg.Users) > 0 {
		srv.SetBaseAuth(server.NewBaseAuth("trimothy", cfg.Users))
	}

	return srv
}
