// growth CLI - one-shot investment projections
//
// Usage:
//   growth project --initial 1000 --rate 12 --rate-period annually \
//       --durations 12 --amounts 100 --periods monthly
//   growth project --plan plan.yaml
//   growth schedule --plan plan.yaml
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/warp/growth-engine/plan"
)

func main() {
	app := &cli.App{
		Name:  "growth",
		Usage: "Project compounding investment growth against a no-profit baseline",
		Commands: []*cli.Command{
			projectCommand(),
			scheduleCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// planFlags are shared by every command that takes a plan.
func planFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "plan",
			Usage: "YAML plan file; other plan flags are ignored when set",
		},
		&cli.Float64Flag{
			Name:  "initial",
			Usage: "initial amount",
		},
		&cli.Float64Flag{
			Name:  "rate",
			Usage: "profit percentage over one profit period",
		},
		&cli.StringFlag{
			Name:  "rate-period",
			Value: "annually",
			Usage: "profit period (monthly, quarterly, annually)",
		},
		&cli.IntSliceFlag{
			Name:  "durations",
			Usage: "segment durations in profit periods",
		},
		&cli.Float64SliceFlag{
			Name:  "amounts",
			Usage: "contribution per cadence point, one per duration or a single broadcast value",
		},
		&cli.StringSliceFlag{
			Name:  "periods",
			Value: cli.NewStringSlice("monthly"),
			Usage: "contribution cadence, one per duration or a single broadcast value",
		},
	}
}

func projectCommand() *cli.Command {
	return &cli.Command{
		Name:  "project",
		Usage: "Run a projection and print the outcome",
		Flags: planFlags(),
		Action: func(c *cli.Context) error {
			def, err := definitionFromContext(c)
			if err != nil {
				return err
			}

			res, err := plan.ProjectDefinition(def)
			if err != nil {
				return err
			}

			fmt.Printf("Horizon:        %d months\n", res.TotalMonths)
			fmt.Printf("Monthly rate:   %.6f%%\n", res.MonthlyRate*100)
			fmt.Printf("Final balance:  %s\n", money(res.FinalBalance))
			fmt.Printf("Baseline:       %s (contributions only)\n", money(res.Baseline))
			fmt.Printf("Gain:           %s\n", money(res.Gain))
			return nil
		},
	}
}

func scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Print the expanded month-indexed schedule without simulating",
		Flags: planFlags(),
		Action: func(c *cli.Context) error {
			def, err := definitionFromContext(c)
			if err != nil {
				return err
			}

			res, err := plan.ProjectDefinition(def)
			if err != nil {
				return err
			}

			fmt.Printf("%-8s %-8s %-12s %s\n", "START", "END", "AMOUNT", "EVERY")
			for _, e := range res.Schedule.Entries {
				fmt.Printf("%-8d %-8d %-12s %d month(s)\n",
					e.StartMonth, e.EndMonth, money(e.Amount), e.IntervalMonths)
			}
			fmt.Printf("Total: %d months\n", res.TotalMonths)
			return nil
		},
	}
}

// definitionFromContext builds the raw plan input from a YAML file or
// from flags. Shape validation stays in plan.Normalize.
func definitionFromContext(c *cli.Context) (plan.Definition, error) {
	if path := c.String("plan"); path != "" {
		return loadPlanFile(path)
	}

	return plan.Definition{
		InitialAmount:    c.Float64("initial"),
		ProfitPercentage: c.Float64("rate"),
		ProfitPeriod:     c.String("rate-period"),
		Durations:        c.IntSlice("durations"),
		Amounts:          c.Float64Slice("amounts"),
		Periods:          c.StringSlice("periods"),
	}, nil
}

func loadPlanFile(path string) (plan.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return plan.Definition{}, fmt.Errorf("failed to read plan file: %w", err)
	}

	var def plan.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return plan.Definition{}, fmt.Errorf("failed to parse plan file %s: %w", path, err)
	}
	return def, nil
}

func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}
