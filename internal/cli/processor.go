package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newProcessorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "processor",
		Short: "Processor management commands (admin)",
	}

	cmd.AddCommand(newProcessorListCmd())
	cmd.AddCommand(newProcessorGetCmd())
	cmd.AddCommand(newProcessorCreateCmd())
	cmd.AddCommand(newProcessorUpdateCmd())
	cmd.AddCommand(newProcessorDeleteCmd())

	return cmd
}

func newProcessorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List processors",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Processor

			if err := client.Get("/api/v1/processors", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProcessorGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a processor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid processor id: %s", args[0])
			}

			var result Processor

			if err := client.Get(fmt.Sprintf("/api/v1/processors/%d", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProcessorCreateCmd() *cobra.Command {
	var brand, model string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a processor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if brand == "" || model == "" {
				return fmt.Errorf("--brand and --model are required")
			}

			req := map[string]string{
				"brand": brand,
				"model": model,
			}
			var result Processor

			if err := client.Post("/api/v1/processors", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Processor brand (required)")
	cmd.Flags().StringVar(&model, "model", "", "Processor model (required)")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func newProcessorUpdateCmd() *cobra.Command {
	var brand, model string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a processor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid processor id: %s", args[0])
			}

			if brand == "" || model == "" {
				return fmt.Errorf("--brand and --model are required")
			}

			req := map[string]string{
				"brand": brand,
				"model": model,
			}
			var result Processor

			if err := client.Put(fmt.Sprintf("/api/v1/processors/%d", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Processor brand (required)")
	cmd.Flags().StringVar(&model, "model", "", "Processor model (required)")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func newProcessorDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a processor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid processor id: %s", args[0])
			}

			if err := client.Delete(fmt.Sprintf("/api/v1/processors/%d", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Processor deleted")
			return nil
		},
	}
}
