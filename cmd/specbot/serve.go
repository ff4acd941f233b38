// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/specbot/specbot/internal/sshserver"
	"github.com/specbot/specbot/pkg/specfile"

	"github.com/spf13/cobra"
)

var (
	// serveHost is the address the SSH server binds to.
	serveHost string
	// servePort is the port the SSH server listens on (0 = auto-select).
	servePort int

	// serveCmd serves interactive spec sessions over SSH.
	serveCmd = &cobra.Command{
		Use:   "serve <spec>",
		Short: "Serve interactive sessions over SSH",
		Long: `Serve interactive sessions over SSH.

Each connection gets its own session against the spec's command set,
behaving exactly like the local REPL. Sessions are anonymous; bind to
a loopback address unless you mean to expose the bot.

Examples:
  specbot serve bot.cue
  specbot serve bot.cue --host 0.0.0.0 --port 2222`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := specfile.Parse(args[0])
			if err != nil {
				return err
			}

			srvCfg := sshserver.DefaultConfig()
			srvCfg.Host = serveHost
			srvCfg.Port = servePort
			srvCfg.Prompt = cfg.Prompt
			srvCfg.Suggestions = suggestionsEnabled()

			srv := sshserver.New(set, srvCfg)
			if err := srv.Start(cmd.Context()); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "%s Serving %s on %s\n", successIcon, CmdStyle.Render(args[0]), CmdStyle.Render(srv.Address()))
			fmt.Fprintf(stdout, "%s Connect with: ssh -p %d %s\n", infoIcon, srv.Port(), srv.Host())

			// Block until the context is cancelled or the server fails.
			select {
			case <-cmd.Context().Done():
				return srv.Stop()
			case err, ok := <-srv.Err():
				if ok && err != nil {
					_ = srv.Stop()
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			}
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "address to bind to")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (0 picks a free port)")
}
