package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Availability queries",
	}

	cmd.AddCommand(newScheduleDatesCmd())
	cmd.AddCommand(newScheduleSlotsCmd())

	return cmd
}

func newScheduleDatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "Show the rolling booking window",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []DateOption

			if err := client.Get("/api/v1/schedule/dates", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScheduleSlotsCmd() *cobra.Command {
	var fecha string
	var onlyAvailable bool

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show a day's slots and their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fecha == "" {
				return fmt.Errorf("--fecha is required")
			}

			var result []TimeSlot
			if err := client.Get("/api/v1/schedule/slots?date="+fecha, &result); err != nil {
				return err
			}

			if onlyAvailable {
				available := result[:0]
				for _, s := range result {
					if s.Available {
						available = append(available, s)
					}
				}
				result = available
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&fecha, "fecha", "", "Date YYYY-MM-DD (required)")
	cmd.Flags().BoolVar(&onlyAvailable, "available", false, "Show only available slots")
	_ = cmd.MarkFlagRequired("fecha")
	return cmd
}
