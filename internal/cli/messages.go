package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Contact message commands",
	}

	cmd.AddCommand(newMessagesListCmd())
	cmd.AddCommand(newMessagesSendCmd())

	return cmd
}

func newMessagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List received contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Message

			if err := client.Get("/api/v1/messages", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMessagesSendCmd() *cobra.Command {
	var name, email, phone, body string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" || body == "" {
				return fmt.Errorf("--name, --email and --body are required")
			}

			req := map[string]string{
				"name":  name,
				"email": email,
				"phone": phone,
				"body":  body,
			}
			var result Message

			if err := client.Post("/api/v1/messages", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Sender name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Sender email (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "Sender phone")
	cmd.Flags().StringVar(&body, "body", "", "Message body (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}

func newMachinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "machines",
		Short: "List the machine catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Machine

			if err := client.Get("/api/v1/machines", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
