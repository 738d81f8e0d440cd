package pulse

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var (
	authEmail    string
	authPassword string
	authName     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *state.Session) error {
			if err := sess.Login(authEmail, authPassword); err != nil {
				return err
			}
			user, _ := sess.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s> (%s)\n",
				user.Name, user.Email, user.MembershipType)
			return nil
		})
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *state.Session) error {
			if err := sess.Signup(authName, authEmail, authPassword); err != nil {
				return err
			}
			user, _ := sess.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s <%s>\n", user.Name, user.Email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *state.Session) error {
			if err := sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(sess *state.Session) error {
			user, ok := sess.User()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", user.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Email: %s\n", user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Membership: %s\n", user.MembershipType)
			if user.IsAdmin {
				fmt.Fprintln(cmd.OutOrStdout(), "Admin: yes")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)

	for _, c := range []*cobra.Command{loginCmd, signupCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Email address")
		c.Flags().StringVar(&authPassword, "password", "", "Password")
		c.MarkFlagRequired("email")
		c.MarkFlagRequired("password")
	}
	signupCmd.Flags().StringVar(&authName, "name", "", "Display name")
}
