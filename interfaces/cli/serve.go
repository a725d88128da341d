package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pdfscope "github.com/felixgeelhaar/pdfscope"
	"github.com/felixgeelhaar/pdfscope/application"
	"github.com/felixgeelhaar/pdfscope/domain/catalog"
	"github.com/felixgeelhaar/pdfscope/infrastructure/config"
	"github.com/felixgeelhaar/pdfscope/infrastructure/logging"
	"github.com/felixgeelhaar/pdfscope/infrastructure/mcp"
	"github.com/felixgeelhaar/pdfscope/infrastructure/pdfcpu"
)

const serverInstructions = `Use the debug_page tool to dump the raw content
stream and resource dictionary of one page of a cataloged PDF. Resources are
addressed as pdf://<name>; page numbers are 1-based.`

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	var (
		configPath string
		dataDir    string
		transport  string
		addr       string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the PDF inspection tools over MCP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfg = config.FromEnv(cfg)

			// Flags win over file and environment.
			flags := cmd.Flags()
			if flags.Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if flags.Changed("transport") {
				cfg.Transport = transport
			}
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = logFormat
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logging.Init(logging.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: os.Stderr,
			})

			cat, err := catalog.Scan(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("populate catalog: %w", err)
			}
			logging.Info().
				Add(logging.DataDir(cfg.DataDir)).
				Add(logging.EntryCount(cat.Len())).
				Msg("catalog populated")

			srv, err := mcp.NewServer(mcp.ServerConfig{
				Name:         "pdfscope",
				Version:      pdfscope.Version,
				Catalog:      cat,
				Inspection:   application.NewInspectionService(pdfcpu.NewParser()),
				Instructions: serverInstructions,
			})
			if err != nil {
				return fmt.Errorf("build server: %w", err)
			}

			if cfg.Transport == config.TransportHTTP {
				return srv.ServeHTTP(cmd.Context(), cfg.Addr)
			}
			return srv.ServeStdio(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", ".", "directory scanned for PDF files")
	cmd.Flags().StringVar(&transport, "transport", config.TransportStdio, "transport to serve on (stdio or http)")
	cmd.Flags().StringVar(&addr, "addr", ":8765", "listen address for the http transport")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "minimum log level")
	cmd.Flags().StringVar(&logFormat, "log-format", "console", "log output format (console or json)")

	return cmd
}
