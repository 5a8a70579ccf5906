package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/studiowebux/tcpjson/internal/cli"
	"github.com/studiowebux/tcpjson/internal/config"
	"github.com/studiowebux/tcpjson/internal/mock"
	"github.com/studiowebux/tcpjson/internal/tui"
	"github.com/studiowebux/tcpjson/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tcpjson",
	Short: "Send text over TCP and pretty-print the JSON reply",
	Long: `tcpjson is a minimal TCP client with an interactive TUI.

Each send opens a fresh connection to the peer, writes the input text,
reads one reply and shows it as indented JSON.

Examples:
  tcpjson                              # Start the TUI against 127.0.0.1:8080
  tcpjson --port 9000                  # Use another port
  tcpjson send '{"cmd":"status"}'      # One-shot send, print formatted reply
  echo ping | tcpjson send -o yaml     # Payload from stdin, YAML output
  tcpjson mock --config mock.yaml      # Run a local peer to test against`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := clientConfig()
		if err != nil {
			return err
		}
		return tui.Run(cfg)
	},
}

var sendCmd = &cobra.Command{
	Use:   "send [text]",
	Short: "Send one payload and print the reply",
	Long: `Send one payload and print the reply.

The payload is the argument, or stdin when no argument is given.
--query applies a JMESPath expression, or a $(shell command) that receives
the reply on stdin, before formatting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := clientConfig()
		if err != nil {
			return err
		}
		if !cfg.Debug {
			log.SetOutput(io.Discard)
		}

		opts := cli.RunOptions{
			Config:       cfg,
			OutputFormat: flagOutput,
			Query:        flagQuery,
			Stdout:       cmd.OutOrStdout(),
			Stderr:       cmd.ErrOrStderr(),
			Stdin:        cmd.InOrStdin(),
		}
		if len(args) > 0 {
			opts.Payload = args[0]
			opts.PayloadSet = true
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return cli.Run(ctx, opts)
	},
}

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run a local TCP peer that answers with configured JSON",
	Long: `Run a local TCP peer that answers with configured JSON.

Without --config every payload is echoed back as {"echo": ..., "bytes": n}.
Use --init to write a sample configuration file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMock(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and optionally check for updates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tcpjson %s\n", version.Version)
		if !flagCheck {
			return nil
		}

		update, err := version.CheckForUpdate(cmd.Context(), version.Version)
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}
		if update.Available {
			fmt.Fprintf(out, "Update available: %s (%s)\n", update.Latest, update.URL)
		} else {
			fmt.Fprintln(out, "You are running the latest version")
		}
		return nil
	},
}

// Flags for the client (root and send)
var (
	flagHost           string
	flagPort           int
	flagConnectTimeout time.Duration
	flagReadTimeout    time.Duration
	flagEscape         bool
	flagNoHighlight    bool
	flagDebug          bool
)

// Flags for send
var (
	flagOutput string
	flagQuery  string
)

// Flags for mock
var (
	mockConfigPath string
	mockInitPath   string
	mockHost       string
	mockPort       int
)

// Flags for version
var flagCheck bool

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", config.DefaultHost, "Peer host")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", config.DefaultPort, "Peer port")
	rootCmd.PersistentFlags().DurationVar(&flagConnectTimeout, "connect-timeout", config.DefaultDialTimeout, "Connect timeout")
	rootCmd.PersistentFlags().DurationVar(&flagReadTimeout, "read-timeout", config.DefaultReadTimeout, "Reply timeout (0 waits forever)")
	rootCmd.PersistentFlags().BoolVar(&flagEscape, "escape", false, "Render JSON strings escaped")
	rootCmd.PersistentFlags().BoolVar(&flagNoHighlight, "no-highlight", false, "Disable response highlighting")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a trace to "+config.DebugLogFile)

	sendCmd.Flags().StringVarP(&flagOutput, "output", "o", cli.OutputText, "Output format (text/json/yaml)")
	sendCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "JMESPath query or $(shell command) applied to the reply")

	mockCmd.Flags().StringVarP(&mockConfigPath, "config", "c", "", "Mock configuration file (.yaml, .yml, .json, .jsonc)")
	mockCmd.Flags().StringVar(&mockInitPath, "init", "", "Write a sample configuration to this path and exit")
	mockCmd.Flags().StringVar(&mockHost, "listen-host", "", "Listen host (overrides config)")
	mockCmd.Flags().IntVar(&mockPort, "listen-port", 0, "Listen port (overrides config)")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "Check GitHub for a newer release")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(mockCmd)
	rootCmd.AddCommand(versionCmd)
}

// clientConfig builds the client configuration from the flags
func clientConfig() (config.Config, error) {
	cfg := config.Default()
	cfg.Host = flagHost
	cfg.Port = flagPort
	cfg.DialTimeout = flagConnectTimeout
	cfg.ReadTimeout = flagReadTimeout
	cfg.EscapeStrings = flagEscape
	cfg.Highlight = !flagNoHighlight
	cfg.Debug = flagDebug

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runMock starts the mock peer and serves until interrupted
func runMock(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if mockInitPath != "" {
		if err := mock.SaveConfig(mock.SampleConfig(), mockInitPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Sample configuration written to %s\n", mockInitPath)
		return nil
	}

	mockCfg := &mock.Config{Port: config.DefaultPort, Logging: true}
	workdir, err := os.Getwd()
	if err != nil {
		return err
	}
	if mockConfigPath != "" {
		loaded, err := mock.LoadConfig(mockConfigPath)
		if err != nil {
			return err
		}
		mockCfg = loaded
		if mockCfg.Port == 0 {
			mockCfg.Port = config.DefaultPort
		}
		workdir = filepath.Dir(mockConfigPath)
	}
	if mockHost != "" {
		mockCfg.Host = mockHost
	}
	if mockPort != 0 {
		mockCfg.Port = mockPort
	}

	server := mock.NewServer(mockCfg, workdir)
	if err := server.Start(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Mock peer listening on %s (%d rules)\n", server.Addr(), len(mockCfg.Responses))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "Stopping mock peer")
			return server.Stop()
		case <-server.NotifyChannel():
			for _, entry := range server.DrainLogs() {
				fmt.Fprintf(out, "%s %s %q -> %s (%s)\n",
					entry.Timestamp.Format(time.TimeOnly),
					entry.Remote,
					strings.TrimRight(entry.Payload, "\r\n"),
					entry.MatchedRule,
					entry.Duration.Round(time.Microsecond))
			}
		}
	}
}
