package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finplan/finplan/internal/audit"
	"github.com/finplan/finplan/internal/calculation"
	"github.com/finplan/finplan/internal/config"
	"github.com/finplan/finplan/internal/domain"
	"github.com/finplan/finplan/internal/economic"
	"github.com/finplan/finplan/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "Financial planning profile engine CLI",
	Long:  "Rule-based financial planning: profile classification, risk scoring, savings recommendation and goal-based SIP projections",
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// fetchIndicators resolves the economic snapshot: from the API unless
// --offline asked for the fallback constants.
func fetchIndicators(cmd *cobra.Command, log zerolog.Logger) domain.EconomicIndicators {
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		return domain.FallbackIndicators()
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()
	return economic.NewClient(log).FetchOrFallback(ctx)
}

func writePlan(cmd *cobra.Command, plan *domain.PlanResult) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		return output.NewJSONFormatter().Write(os.Stdout, plan)
	case "console", "":
		return output.NewConsoleFormatter().Write(os.Stdout, plan)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

var planCmd = &cobra.Command{
	Use:   "plan [input-file]",
	Short: "Compute a full financial plan from a YAML input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		input, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		ind := fetchIndicators(cmd, log)
		engine := calculation.NewEngine(audit.NewLogRecorder(log), log)
		plan, err := engine.BuildPlan(&input.Investor, input.Goals, ind, input.AsOf)
		if err != nil {
			return err
		}
		return writePlan(cmd, plan)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Run the advisory consistency checks on an input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)

		input, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		ind := fetchIndicators(cmd, log)
		engine := calculation.NewEngine(nil, log)
		result, profile := engine.ValidateOnly(&input.Investor, &ind, input.AsOf)

		if profile.Matched() {
			fmt.Printf("Profile: %s\n", profile)
		} else {
			fmt.Println("Profile: no matching profile")
		}
		fmt.Printf("Overall valid: %t\n", result.OverallValid)
		for _, issue := range result.Issues {
			fmt.Printf("[%s] %s: %s\n", issue.Kind, issue.Field, issue.Message)
		}
		for _, s := range result.Suggestions {
			fmt.Printf("[suggestion] %s\n", s)
		}
		return nil
	},
}

var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Fetch and print the current economic-indicator snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd)
		ind := fetchIndicators(cmd, log)

		fmt.Printf("GDP growth:    %s%% (%s)\n", ind.GDPGrowth.Value.String(), ind.GDPGrowth.Period)
		fmt.Printf("CPI inflation: %s%% (%s)\n", ind.CPIInflation.Value.String(), ind.CPIInflation.Period)
		if ind.IsFallback {
			fmt.Println("Note: live data unavailable, fallback constants in use")
		}
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "finplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("offline", false, "Skip the indicator fetch and use fallback constants")

	planCmd.Flags().String("format", "console", "Output format (console, json)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(indicatorsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
