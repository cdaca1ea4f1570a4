package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/signdeck-backend/internal/app"
	"github.com/heartmarshall/signdeck-backend/internal/auth"
)

// operatorProvider is the identity subject of users created here.
const operatorProvider = "signdeckctl"

// NewUserCommand creates the user command group.
func NewUserCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newUserAddCommand(rootOpts))
	cmd.AddCommand(newUserDeleteCommand(rootOpts))

	return cmd
}

func newUserAddCommand(rootOpts *RootOptions) *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user and assign the full catalog",
		Long: `Register a user without an OAuth round trip. The user goes through the
same sign-in path as a first Google login, so every catalog card is assigned.
Adding an existing email prints the existing user.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return errors.New("--email is required")
			}

			identity := &auth.OAuthIdentity{Email: email, Subject: operatorProvider}
			if name != "" {
				identity.Name = &name
			}

			return rootOpts.withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				res, err := c.Auth.SignIn(ctx, identity)
				if err != nil {
					return err
				}
				verb := "exists"
				if res.Created {
					verb = "created"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s <%s>\n", verb, res.User.ID, res.User.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name, derived from the email when empty")

	return cmd
}

func newUserDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Soft-delete a user",
		Long:  "Soft-delete a user. The row and its assignments are purged later by cleanup.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}

			return rootOpts.withContainer(cmd, func(ctx context.Context, c *app.Container) error {
				if err := c.Users.SoftDelete(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
				return nil
			})
		},
	}
}
