package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func playerFlags(cmd *cobra.Command, nombre, apellido, email, telefono *string) {
	cmd.Flags().StringVar(nombre, "nombre", "", "First name (required)")
	cmd.Flags().StringVar(apellido, "apellido", "", "Last name (required)")
	cmd.Flags().StringVar(email, "email", "", "Email (required)")
	cmd.Flags().StringVar(telefono, "telefono", "", "Phone, 10 digits (required)")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("apellido")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("telefono")
}

func newPlayerCreateCmd() *cobra.Command {
	var nombre, apellido, email, telefono string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"nombre":   nombre,
				"apellido": apellido,
				"email":    email,
				"telefono": telefono,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			notify.Success("Jugador creado con éxito", result.FirstName+" "+result.LastName)
			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	playerFlags(cmd, &nombre, &apellido, &email, &telefono)
	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var id, nombre, apellido, email, telefono string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit an existing player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}

			req := map[string]string{
				"nombre":   nombre,
				"apellido": apellido,
				"email":    email,
				"telefono": telefono,
			}
			var result Player

			if err := client.Patch("/api/v1/players/"+id, req, &result); err != nil {
				return err
			}

			notify.Success("Jugador actualizado", result.FirstName+" "+result.LastName)
			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Player ID (required)")
	_ = cmd.MarkFlagRequired("id")
	playerFlags(cmd, &nombre, &apellido, &email, &telefono)
	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a player",
		Long: `Delete a player by ID.

Existing reservations for the player are kept; they retain the name the
player had when they were booked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}

			if !confirmed("¿Estás seguro?", "¿Quieres eliminar el jugador?") {
				out := NewOutput(cfg.Output)
				out.PrintMessage("Cancelled")
				return nil
			}

			if err := client.Delete("/api/v1/players/" + id); err != nil {
				return err
			}

			notify.Success("Eliminado", "El jugador se ha eliminado con éxito")
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Player ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
