package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	planner "github.com/ferienplaner/planner"
)

func loginCmd() *cobra.Command {
	var url, email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(url, email, password)
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Backend base URL (defaults to the saved one)")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func runLogin(url, email, password string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if url == "" {
		url = cfg.BaseURL
	}
	if url == "" {
		return fmt.Errorf("no backend URL: pass --url once, it will be remembered")
	}

	client := planner.New(url)
	resp, err := client.Login(context.Background(), email, password)
	if err != nil {
		return err
	}

	if err := saveConfig(cliConfig{BaseURL: url, Token: resp.Token}); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Logged in as %s.\n", resp.User.Name)
	return nil
}

func signupCmd() *cobra.Command {
	var url, name, email, password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return fmt.Errorf("--url is required")
			}
			client := planner.New(url)
			resp, err := client.Signup(context.Background(), planner.SignupRequest{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := saveConfig(cliConfig{BaseURL: url, Token: resp.Token}); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Welcome, %s.\n", resp.User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Backend base URL")
	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
