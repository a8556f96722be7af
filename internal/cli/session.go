package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(get func() *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "Sign in under a display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := get().session.SignIn(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), u)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", u.Name)
			return nil
		},
	}
}

func newLogoutCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := get().session.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(get func() *app, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := get().session.Current(cmd.Context())
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), u)
			}
			if !u.SignedIn {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.Name)
			return nil
		},
	}
}
