package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagPrintEnv    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server",
	Long: `Starts an SSH server. Every connection gets its own variant menu
and hot-seat games; results land in the shared standings database.

Settings are read from the environment first (see --print-env); flags
that are given explicitly win.

Connect with:
  ssh -p 23234 localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (default: ~/.connect4/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this long")
	serveCmd.Flags().BoolVar(&flagPrintEnv, "print-env", false, "List the environment variables and exit")
}

// serverConfig merges the environment with explicit flags.
func serverConfig(cmd *cobra.Command) (config.ServerConfig, error) {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return config.ServerConfig{}, err
	}

	if cmd.Flags().Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if cfg.DBPath == "" || cmd.Flags().Changed("db") {
		cfg.DBPath = flagDBPath
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagPrintEnv {
		fmt.Print(config.ServerUsage())
		return nil
	}

	cfg, err := serverConfig(cmd)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(cfg, tickRate(), app.logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
