package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinaykagithapu/portfolio"
	"github.com/vinaykagithapu/portfolio/internal/adapters/cli"
)

var (
	exportDir   string
	exportClean bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long: `Renders every page and writes it, with the fingerprinted assets, to the
output directory (export.dir in the config, or --out).`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "output directory (overrides export.dir)")
	exportCmd.Flags().BoolVar(&exportClean, "clean", false, "remove the output directory first")
}

func runExport(cmd *cobra.Command, args []string) error {
	output := cli.NewOutput()
	output.PrintHeader("Portfolio Export")

	app, err := portfolio.New(
		portfolio.WithConfigPath(configPath),
		portfolio.WithLogger(logger),
	)
	if err != nil {
		output.PrintError("%v", err)
		return err
	}

	dir := app.Config().Export.Dir
	if exportDir != "" {
		dir = exportDir
	}

	report := cli.NewExportReport(output, dir)
	result := app.Export(cmd.Context(), dir, exportClean)
	report.Render(result)
	if result.Error != nil {
		return fmt.Errorf("export: %w", result.Error)
	}
	return nil
}
