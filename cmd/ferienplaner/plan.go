package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	planner "github.com/ferienplaner/planner"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Price and save a plan described in a YAML file",
	}
	cmd.AddCommand(planCostCmd())
	cmd.AddCommand(planSaveCmd())
	return cmd
}

// planFile is the on-disk shape of a plan: a name plus (person, camp) pairs.
type planFile struct {
	Name       string `yaml:"name"`
	Selections []struct {
		PersonID int64 `yaml:"person_id"`
		CampID   int64 `yaml:"camp_id"`
	} `yaml:"selections"`
}

func planCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost <plan.yaml>",
		Short: "Print the itemised cost of a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := loadPlanIntoEngine(context.Background(), args[0])
			if err != nil {
				return err
			}
			printBreakdown(engine, engine.ComputeBreakdown(planner.Today()))
			return nil
		},
	}
}

func planSaveCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "save <plan.yaml>",
		Short: "Price a plan file and persist it to the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			engine, pf, err := loadPlanIntoEngine(ctx, args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = pf.Name
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			saved, err := engine.SavePlan(ctx, client, name, planner.Today())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Saved plan %q (id %d), total %.2f.\n", saved.Name, saved.ID, saved.TotalCost)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Plan name (overrides the file's)")
	return cmd
}

// loadPlanIntoEngine reads a plan file, fetches fresh people and camp caches
// and loads the file's pairings into an engine. Pairings naming unknown
// children are dropped with a notice, matching how saved plans load.
func loadPlanIntoEngine(ctx context.Context, path string) (*planner.Engine, *planFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var pf planFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(pf.Selections) == 0 {
		return nil, nil, planner.ErrEmptySelection
	}

	client, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	people, err := client.ListPeople(ctx)
	if err != nil {
		return nil, nil, err
	}
	camps, err := client.ListCamps(ctx, planner.CampFilter{})
	if err != nil {
		return nil, nil, err
	}

	engine := planner.NewEngine(people, camps)
	pairs := make([]planner.PlanPair, 0, len(pf.Selections))
	for _, s := range pf.Selections {
		pairs = append(pairs, planner.PlanPair{PersonID: s.PersonID, CampID: s.CampID})
	}
	report := engine.LoadPlan(planner.Plan{Name: pf.Name, Selections: pairs})
	for _, id := range report.DroppedPersonIDs {
		fmt.Fprintf(os.Stderr, "note: no child with id %d, pairing dropped\n", id)
	}
	if engine.Selection().Empty() {
		return nil, nil, planner.ErrEmptySelection
	}
	return engine, &pf, nil
}

func printBreakdown(engine *planner.Engine, b planner.Breakdown) {
	w := os.Stdout
	for _, line := range b.Lines {
		fmt.Fprintf(w, "%-32s  %s\n", line.CampName, line.Detail)
		for _, name := range line.AttendeeNames {
			fmt.Fprintf(w, "    - %s\n", name)
		}
	}
	for _, u := range b.Unpriced {
		fmt.Fprintf(w, "%-32s  price to be determined\n", u.CampName)
		for _, name := range u.AttendeeNames {
			fmt.Fprintf(w, "    - %s\n", name)
		}
	}
	for _, f := range b.Faults {
		fmt.Fprintf(w, "%-32s  skipped: %v\n", campName(engine, f.CampID), f.Err)
	}
	fmt.Fprintf(w, "\nTotal: %.2f\n", b.Total)
}

func campName(engine *planner.Engine, id int64) string {
	for _, c := range engine.Camps() {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("camp %d", id)
}
