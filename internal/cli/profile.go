package cli

import (
	"fmt"

	"github.com/GuilleEguia/taskmanager/internal/client"
	"github.com/spf13/cobra"
)

func profileCmd(app *App) *cobra.Command {
	var username, firstName, lastName, email, dob, bio, state string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAuth(app); err != nil {
				return err
			}

			current, err := app.Profile.Get(cmd.Context())
			if err != nil {
				return err
			}

			editing := cmd.Flags().Changed("username") || cmd.Flags().Changed("first-name") ||
				cmd.Flags().Changed("last-name") || cmd.Flags().Changed("email") ||
				cmd.Flags().Changed("dob") || cmd.Flags().Changed("bio") ||
				cmd.Flags().Changed("state")

			if !editing {
				printProfile(app, current)
				return nil
			}

			req := client.UpdateProfileRequest{
				Username:  current.Username,
				FirstName: current.FirstName,
				LastName:  current.LastName,
				Email:     current.Email,
				DOB:       current.DOB,
				Bio:       current.Bio,
				State:     current.State,
			}
			if cmd.Flags().Changed("username") {
				req.Username = username
			}
			if cmd.Flags().Changed("first-name") {
				req.FirstName = firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = lastName
			}
			if cmd.Flags().Changed("email") {
				req.Email = email
			}
			if cmd.Flags().Changed("dob") {
				req.DOB = dob
			}
			if cmd.Flags().Changed("bio") {
				req.Bio = bio
			}
			if cmd.Flags().Changed("state") {
				req.State = state
			}

			updated, err := app.Profile.Update(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(app.Out, "Profile updated")
			printProfile(app, updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "New username")
	cmd.Flags().StringVar(&firstName, "first-name", "", "New first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "New last name")
	cmd.Flags().StringVar(&email, "email", "", "New email")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&bio, "bio", "", "Bio")
	cmd.Flags().StringVar(&state, "state", "", "State")

	return cmd
}
