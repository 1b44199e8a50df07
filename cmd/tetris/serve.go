package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagServerConfig string
	flagAddr         string
	flagHostKey      string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server. Each connection gets its own session with the
mode menu; all users share the runs database.

Settings come from --config (YAML), then the TETRIS_SSH_ADDR,
TETRIS_HOST_KEY, TETRIS_DB and TETRIS_IDLE_TIMEOUT environment
variables, then the flags below.

Examples:
  tetris serve
  tetris serve --addr :2323 --host-key ./host_key
  tetris serve --config ./server.yaml

Connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServerConfig, "config", "", "Path to server config YAML")
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to the host key, generated if missing")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadServer(flagServerConfig)
	if err != nil {
		return err
	}
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if cfg.DBPath == "" || cmd.Flags().Changed("db") {
		cfg.DBPath = flagDBPath
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}
	return server.ListenAndServe()
}
