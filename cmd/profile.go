package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/verdant/gdn/internal/models"
	"github.com/verdant/gdn/internal/output"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Show or update the account profile",
	GroupID: "account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return whoamiCmd.RunE(cmd, args)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update profile fields. Only the fields given as flags change; the
account id and password are never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer a.Close()

		if _, err := a.requireAccount(); err != nil {
			output.Error("%v", err)
			return err
		}

		// Only flags the user actually set become part of the patch
		var patch models.AccountPatch
		cmd.Flags().Visit(func(f *pflag.Flag) {
			v := f.Value.String()
			switch f.Name {
			case "name":
				patch.Name = &v
			case "email":
				patch.Email = &v
			case "avatar":
				patch.Avatar = &v
			case "garden":
				patch.GardenName = &v
			}
		})

		if patch.Name == nil && patch.Email == nil && patch.Avatar == nil && patch.GardenName == nil {
			output.Warning("nothing to update: pass --name, --email, --avatar, or --garden")
			return nil
		}

		acct, err := a.dir.UpdateProfile(patch)
		if err != nil {
			output.Error("update profile: %v", err)
			return err
		}

		output.Success("Profile updated for %s", acct.Name)
		return nil
	},
}

func init() {
	profileCmd.Flags().Bool("json", false, "output as JSON")

	profileUpdateCmd.Flags().String("name", "", "display name")
	profileUpdateCmd.Flags().String("email", "", "email address")
	profileUpdateCmd.Flags().String("avatar", "", "avatar character")
	profileUpdateCmd.Flags().String("garden", "", "garden name")

	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
