package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/config"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/plan"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate and export workout plans",
		// Plan files are handled without opening the database.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	cmd.AddCommand(
		newPlanValidateCmd(),
		newPlanExportCmd(app),
	)

	return cmd
}

func newPlanValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a plan file for problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			f, err := readPlanFile(path, format)
			if err != nil {
				return err
			}

			if errs := plan.Validate(f); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(out, "%s %s\n", formatter.StyleRed.Render("✖"), e)
				}
				return fmt.Errorf("%s: %d problems", path, len(errs))
			}

			p, err := plan.Convert(f)
			if err != nil {
				return err
			}
			exercises := 0
			for _, d := range p.Days() {
				exercises += len(d.Exercises)
			}
			fmt.Fprintf(out, "%s %s: %d days, %d exercises\n",
				formatter.StyleGreen.Render("✔"), path, p.Len(), exercises)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "File format (json, yaml, toml); default from extension")

	return cmd
}

func newPlanExportCmd(app *App) *cobra.Command {
	var (
		format  string
		output  string
		bundled bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active plan as JSON, YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := plan.ParseFormat(format)
			if err != nil {
				return err
			}

			var p *domain.Plan
			if bundled {
				p, err = plan.Default()
			} else {
				p, err = app.activePlan(cmd)
			}
			if err != nil {
				return err
			}

			data, err := plan.Export(p, f)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing plan: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d days to %s\n", p.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(plan.FormatYAML), "Output format: json, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&bundled, "bundled", false, "Export the bundled plan, ignoring plan_path")

	return cmd
}

func readPlanFile(path, format string) (*plan.File, error) {
	if format == "" {
		return plan.LoadFile(path)
	}
	f, err := plan.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return plan.Decode(data, f)
}

// activePlan returns the tracker's plan, or resolves the configured plan
// without opening the database.
func (a *App) activePlan(cmd *cobra.Command) (*domain.Plan, error) {
	if a.Tracker != nil {
		return a.Tracker.Plan(), nil
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return loadPlan(cfg.PlanPath)
}
