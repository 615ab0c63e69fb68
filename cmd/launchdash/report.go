package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"launchdash/internal/dataset"
	"launchdash/internal/report"
	"launchdash/internal/validation"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a Markdown summary of the launch records",
		Long: `Report computes the same success pie and payload scatter the dashboard shows
and writes them as Markdown tables with a mermaid pie chart.

Examples:
  # All sites, full payload range, to stdout
  launchdash report

  # One site and payload range, to a file
  launchdash report --site "KSC LC-39A" --low 2000 --high 5000 -o ksc.md`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().String("site", "ALL", "Launch site, or ALL")
	cmd.Flags().String("low", "", "Lowest payload mass in kg (default 0)")
	cmd.Flags().String("high", "", "Highest payload mass in kg (default 10000)")
	cmd.Flags().StringP("output", "o", "-", "Output file path, - for stdout")
	cmd.Flags().String("title", "", "Report title")

	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	rawSite, _ := flags.GetString("site")
	low, _ := flags.GetString("low")
	high, _ := flags.GetString("high")
	output, _ := flags.GetString("output")
	title, _ := flags.GetString("title")

	site, err := validation.ParseSite(rawSite)
	if err != nil {
		return err
	}

	ds, err := dataset.LoadFile(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("load launch records: %w", err)
	}

	opts := report.Options{
		Site:  site,
		Range: validation.ParsePayloadRange(low, high),
		Title: title,
	}

	if output == "-" {
		return writeReport(cmd.OutOrStdout(), ds, opts)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := writeReport(f, ds, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	return nil
}

func writeReport(w io.Writer, ds *dataset.Dataset, opts report.Options) error {
	if err := report.NewMarkdownWriter(w).Write(ds, opts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
