package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	planner "github.com/ferienplaner/planner"
)

func peopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage the children you plan for",
	}
	cmd.AddCommand(peopleListCmd())
	cmd.AddCommand(peopleAddCmd())
	cmd.AddCommand(peopleUpdateCmd())
	cmd.AddCommand(peopleRmCmd())
	return cmd
}

func peopleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered children",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			people, err := client.ListPeople(context.Background())
			if err != nil {
				return err
			}
			if len(people) == 0 {
				fmt.Fprintln(os.Stdout, "No children registered yet.")
				return nil
			}
			today := planner.Today()
			for _, p := range people {
				age, err := planner.AgeAt(p.Birthdate, today)
				if err != nil {
					fmt.Fprintf(os.Stdout, "%4d  %-20s  born %s\n", p.ID, p.Name, p.Birthdate)
					continue
				}
				fmt.Fprintf(os.Stdout, "%4d  %-20s  born %s  (%d years)\n", p.ID, p.Name, p.Birthdate, age)
			}
			return nil
		},
	}
}

func peopleAddCmd() *cobra.Command {
	var name, birthdate string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a child",
		RunE: func(cmd *cobra.Command, args []string) error {
			bd, err := planner.ParseDate(birthdate)
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			p, err := client.AddPerson(context.Background(), name, bd)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Added %s (id %d).\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Child's name")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "Birthdate (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birthdate")
	return cmd
}

func peopleUpdateCmd() *cobra.Command {
	var name, birthdate string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a child's name or birthdate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			req := planner.UpdatePersonRequest{Name: name}
			if birthdate != "" {
				bd, err := planner.ParseDate(birthdate)
				if err != nil {
					return err
				}
				req.Birthdate = &bd
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			p, err := client.UpdatePerson(context.Background(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Updated %s (id %d).\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "New birthdate (YYYY-MM-DD)")
	return cmd
}

func peopleRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a child record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if !yes && !confirm("Delete this child and all their pairings?") {
				return nil
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeletePerson(context.Background(), id); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "Deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
