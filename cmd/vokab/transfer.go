package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lehmann314159/vokab/internal/models"
	"github.com/lehmann314159/vokab/internal/services"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json|file.csv>",
	Short: "Insert words from a JSON array or CSV file in one batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		a, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		svc := services.NewWordService(a.store, a.logger)

		var created []*models.Word
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			created, err = svc.ImportJSON(cmd.Context(), f)
		case ".csv":
			created, err = svc.ImportCSV(cmd.Context(), f)
		default:
			return fmt.Errorf("unsupported file type %q, want .json or .csv", filepath.Ext(path))
		}
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}

		a.logger.Info("Import finished", zap.String("file", path), zap.Int("imported", len(created)))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file.csv]",
	Short: "Write every word as CSV to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		var out io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		return services.NewWordService(a.store, a.logger).ExportCSV(cmd.Context(), out)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
