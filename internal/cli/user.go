package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands (admin)",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserSetAdminCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []User

			if err := client.Get("/api/v1/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUserSetAdminCmd() *cobra.Command {
	var isAdmin bool

	cmd := &cobra.Command{
		Use:   "set-admin <id>",
		Short: "Grant or revoke admin rights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id: %s", args[0])
			}

			req := map[string]bool{"is_admin": isAdmin}

			if err := client.Patch(fmt.Sprintf("/api/v1/users/%d/admin", id), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Admin flag updated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&isAdmin, "admin", true, "Whether the user should be an admin")

	return cmd
}
