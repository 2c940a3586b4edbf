package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/verdant/gdn/internal/auth"
	"github.com/verdant/gdn/internal/output"
)

var signupCmd = &cobra.Command{
	Use:     "signup",
	Aliases: []string{"register"},
	Short:   "Create an account and sign in",
	GroupID: "account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		gardenName, _ := cmd.Flags().GetString("garden")

		if name == "" || email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name),
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
				huh.NewInput().Title("Garden name (optional)").Value(&gardenName),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		if name == "" || email == "" || password == "" {
			output.Error("name, email, and password are required")
			return fmt.Errorf("name, email, and password are required")
		}

		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		acct, err := a.dir.SignUp(name, email, password, gardenName)
		if err != nil {
			if errors.Is(err, auth.ErrEmailExists) {
				output.Error("%v", err)
				return err
			}
			output.Error("sign up: %v", err)
			return err
		}

		output.Success("Welcome, %s! Your garden \"%s\" is ready.", acct.Name, acct.GardenName)
		return nil
	},
}

var signinCmd = &cobra.Command{
	Use:     "signin",
	Aliases: []string{"login"},
	Short:   "Sign in to an existing account",
	GroupID: "account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		acct, err := a.dir.SignIn(email, password)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("Welcome back, %s 🌱", acct.Name)
		return nil
	},
}

var signoutCmd = &cobra.Command{
	Use:     "signout",
	Aliases: []string{"logout"},
	Short:   "Sign out of the current account",
	GroupID: "account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, ok := a.dir.Current(); !ok {
			output.Info("Already signed out")
			return nil
		}
		if err := a.dir.SignOut(); err != nil {
			output.Error("sign out: %v", err)
			return err
		}
		output.Success("Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Short:   "Show the signed-in account",
	GroupID: "account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		acct, err := a.requireAccount()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(acct)
		}

		output.Title("%s  %s", acct.Avatar, acct.Name)
		output.Info("Email:  %s", acct.Email)
		output.Info("Garden: %s", acct.GardenName)
		output.Subtle("Member since %s", acct.JoinDate)
		return nil
	},
}

func init() {
	signupCmd.Flags().String("name", "", "display name")
	signupCmd.Flags().String("email", "", "email address (unique, case-insensitive)")
	signupCmd.Flags().String("password", "", "password")
	signupCmd.Flags().String("garden", "", "garden name (default \"<name>'s Garden\")")

	signinCmd.Flags().String("email", "", "email address")
	signinCmd.Flags().String("password", "", "password")

	whoamiCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(signupCmd, signinCmd, signoutCmd, whoamiCmd)
}
