package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	planner "github.com/ferienplaner/planner"
)

func campsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camps",
		Short: "Browse the camp catalogue",
	}
	cmd.AddCommand(campsListCmd())
	cmd.AddCommand(campsShowCmd())
	return cmd
}

func campsListCmd() *cobra.Command {
	var minAge, maxAge int
	var forPeople []int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List camps, optionally filtered by age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := context.Background()

			var filter planner.CampFilter
			if cmd.Flags().Changed("min-age") {
				filter.MinAge = &minAge
			}
			if cmd.Flags().Changed("max-age") {
				filter.MaxAge = &maxAge
			}
			camps, err := client.ListCamps(ctx, filter)
			if err != nil {
				return err
			}

			// --person narrows to camps at least one of the given children
			// can attend, using their age at each camp's start.
			if len(forPeople) > 0 {
				people, err := client.ListPeople(ctx)
				if err != nil {
					return err
				}
				engine := planner.NewEngine(people, camps)
				for _, id := range forPeople {
					engine.TogglePerson(id)
				}
				camps = engine.VisibleCamps()
			}

			if len(camps) == 0 {
				fmt.Fprintln(os.Stdout, "No camps match.")
				return nil
			}
			for _, c := range camps {
				fmt.Fprintf(os.Stdout, "%4d  %-32s  %s  %s%s\n",
					c.ID, c.Name, campDates(c), campAges(c), campPrice(c))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minAge, "min-age", 0, "Only camps admitting this age or older")
	cmd.Flags().IntVar(&maxAge, "max-age", 0, "Only camps admitting this age or younger")
	cmd.Flags().Int64SliceVar(&forPeople, "person", nil, "Child ids; show only camps one of them can attend")
	return cmd
}

func campsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one camp in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			c, err := client.GetCamp(context.Background(), id)
			if err != nil {
				return err
			}
			printCamp(*c)
			return nil
		},
	}
}

func campDates(c planner.Camp) string {
	switch {
	case c.StartDate.IsZero():
		return "dates tbd"
	case c.EndDate.IsZero():
		return c.StartDate.String()
	default:
		return fmt.Sprintf("%s to %s", c.StartDate, c.EndDate)
	}
}

func campAges(c planner.Camp) string {
	switch {
	case c.AgeMin != nil && c.AgeMax != nil:
		return fmt.Sprintf("ages %d-%d", *c.AgeMin, *c.AgeMax)
	case c.AgeMin != nil:
		return fmt.Sprintf("ages %d+", *c.AgeMin)
	case c.AgeMax != nil:
		return fmt.Sprintf("up to %d", *c.AgeMax)
	default:
		return "all ages"
	}
}

func campPrice(c planner.Camp) string {
	if c.BasePrice == nil {
		return "  price tbd"
	}
	s := fmt.Sprintf("  %.2f", *c.BasePrice)
	if planner.IsEarlyBirdActive(c, planner.Today()) {
		s += fmt.Sprintf(" (%.2f early bird)", *c.EarlyBirdPrice)
	}
	return s
}

func printCamp(c planner.Camp) {
	w := os.Stdout
	fmt.Fprintf(w, "%s (id %d)\n", c.Name, c.ID)
	fmt.Fprintf(w, "  %s, %s\n", campDates(c), campAges(c))
	if c.Location != "" {
		fmt.Fprintf(w, "  Location: %s\n", c.Location)
	}
	if c.VenueAddress != "" {
		fmt.Fprintf(w, "  Venue: %s\n", c.VenueAddress)
	}
	if c.TimeOfDay != "" {
		fmt.Fprintf(w, "  Time: %s\n", c.TimeOfDay)
	}
	if c.BasePrice != nil {
		fmt.Fprintf(w, "  Price: %.2f\n", *c.BasePrice)
	}
	if c.SiblingPrice != nil {
		fmt.Fprintf(w, "  Sibling price: %.2f\n", *c.SiblingPrice)
	}
	if c.EarlyBirdPrice != nil && c.EarlyBirdUntil != nil {
		fmt.Fprintf(w, "  Early bird: %.2f until %s\n", *c.EarlyBirdPrice, *c.EarlyBirdUntil)
	}
	if c.PriceNote != "" {
		fmt.Fprintf(w, "  Price note: %s\n", c.PriceNote)
	}
	if c.Spots != nil {
		fmt.Fprintf(w, "  Free spots: %d\n", *c.Spots)
	}
	if c.RegistrationDeadline != nil {
		fmt.Fprintf(w, "  Register by: %s\n", *c.RegistrationDeadline)
	}
	if c.Description != "" {
		fmt.Fprintf(w, "\n  %s\n", strings.TrimSpace(c.Description))
	}
	if c.DetailURL != "" {
		fmt.Fprintf(w, "  Details: %s\n", c.DetailURL)
	}
	if c.SignupURL != "" {
		fmt.Fprintf(w, "  Signup: %s\n", c.SignupURL)
	}
}
