package main

import (
	"context"
	"fmt"
	"fundtracker/cmd"
	"fundtracker/internal"
	"fundtracker/internal/app"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

var (
	month     string
	flowsDir  string
	sendEmail bool
	force     bool
)

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "monthly fund flow reporting",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "build the monthly net subscription report and optionally email it",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		cfg := handler.ReportJobConfig
		if month != "" {
			cfg.Month = month
		}
		dir := handler.ReportFlowsDir
		if flowsDir != "" {
			dir = flowsDir
		}

		period, err := cfg.Period(time.Now().UTC())
		if err != nil {
			return err
		}
		flows, err := app.LoadInstitutionFlows(cfg, dir)
		if err != nil {
			return err
		}

		input := app.ReportRunInput{
			Flows:  flows,
			Period: period,
			Force:  force,
		}
		if sendEmail {
			input.Recipients = cfg.Recipients
		}

		report, err := handler.ReportApp.GenerateMonthlyReport(context.Background(), input)
		if err != nil {
			return err
		}

		fmt.Printf("report %s: %d institutions, grand total %s\n",
			report.Month, len(report.Table.Institutions), report.Table.GrandTotal.StringFixed(2))
		internal.Pprint(report.Stats)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&month, "month", "", "report month as YYYY-MM, defaults to the configured one")
	generateCmd.Flags().StringVar(&flowsDir, "flows", "", "directory holding the institution flow csv files")
	generateCmd.Flags().BoolVar(&sendEmail, "email", false, "email the report to the configured recipients")
	generateCmd.Flags().BoolVar(&force, "force", false, "regenerate even when the month is already archived")
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
