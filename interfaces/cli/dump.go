package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/pdfscope/application"
	"github.com/felixgeelhaar/pdfscope/infrastructure/pdfcpu"
)

// newDumpCmd creates the dump command, which runs the page dump against a
// local file without going through an MCP client.
func (a *App) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE PAGE",
		Short: "Dump one page of a local PDF as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid page number %q: %w", args[1], err)
			}

			svc := application.NewInspectionService(pdfcpu.NewParser())
			dump, err := svc.DumpPageFile(cmd.Context(), args[0], page)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(dump)
		},
	}
}
