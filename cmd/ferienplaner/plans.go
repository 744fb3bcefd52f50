package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func plansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage saved plans",
	}
	cmd.AddCommand(plansListCmd())
	cmd.AddCommand(plansRmCmd())
	return cmd
}

func plansListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			plans, err := client.ListPlans(context.Background())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(os.Stdout, "No saved plans.")
				return nil
			}
			for _, p := range plans {
				created := ""
				if !p.CreatedAt.IsZero() {
					created = p.CreatedAt.Format("2006-01-02")
				}
				fmt.Fprintf(os.Stdout, "%4d  %-28s  %3d pairings  total %.2f  %s\n",
					p.ID, p.Name, len(p.Selections), p.TotalCost, created)
			}
			return nil
		},
	}
}

func plansRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if !yes && !confirm("Delete this plan?") {
				return nil
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeletePlan(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
