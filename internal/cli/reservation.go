package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReservationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Reservation management commands",
	}

	cmd.AddCommand(newReservationListCmd())
	cmd.AddCommand(newReservationCreateCmd())
	cmd.AddCommand(newReservationUpdateCmd())
	cmd.AddCommand(newReservationDeleteCmd())

	return cmd
}

func newReservationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Reservation

			if err := client.Get("/api/v1/reservations", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func reservationFlags(cmd *cobra.Command, jugador, fecha, hora *string) {
	cmd.Flags().StringVar(jugador, "jugador", "", "Player ID (required)")
	cmd.Flags().StringVar(fecha, "fecha", "", "Date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(hora, "hora", "", "Slot start HH:mm (required)")
	_ = cmd.MarkFlagRequired("jugador")
	_ = cmd.MarkFlagRequired("fecha")
	_ = cmd.MarkFlagRequired("hora")
}

func newReservationCreateCmd() *cobra.Command {
	var jugador, fecha, hora string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a slot for a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"jugador": jugador,
				"fecha":   fecha,
				"hora":    hora,
			}
			var result Reservation

			if err := client.Post("/api/v1/reservations", req, &result); err != nil {
				return err
			}

			notify.Success("Reserva creada con éxito",
				fmt.Sprintf("%s el %s a las %s", result.PlayerName, result.Date, result.Time))
			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	reservationFlags(cmd, &jugador, &fecha, &hora)
	return cmd
}

func newReservationUpdateCmd() *cobra.Command {
	var id, jugador, fecha, hora string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Move or reassign a reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}

			req := map[string]string{
				"jugador": jugador,
				"fecha":   fecha,
				"hora":    hora,
			}
			var result Reservation

			if err := client.Patch("/api/v1/reservations/"+id, req, &result); err != nil {
				return err
			}

			notify.Success("Reserva actualizada",
				fmt.Sprintf("%s el %s a las %s", result.PlayerName, result.Date, result.Time))
			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Reservation ID (required)")
	_ = cmd.MarkFlagRequired("id")
	reservationFlags(cmd, &jugador, &fecha, &hora)
	return cmd
}

func newReservationDeleteCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Cancel a reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}

			if !confirmed("¿Estás seguro?", "¿Quieres eliminar la reserva?") {
				out := NewOutput(cfg.Output)
				out.PrintMessage("Cancelled")
				return nil
			}

			if err := client.Delete("/api/v1/reservations/" + id); err != nil {
				return err
			}

			notify.Success("Eliminado", "La reserva se ha eliminado con éxito")
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Reservation ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
