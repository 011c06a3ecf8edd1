package cli

import (
	"context"
	"fmt"

	"github.com/s9hmzyt46y-beep/Laimis/internal/cli/formatter"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientUpdateCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientAddCmd(app *App) *cobra.Command {
	var email, phone, code, address string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a new client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Client{
				Name:        args[0],
				Email:       email,
				Phone:       phone,
				CompanyCode: code,
				Address:     address,
			}
			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Added client %s [%s]\n", c.Name, c.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&code, "code", "", "Company registration code")
	cmd.Flags().StringVar(&address, "address", "", "Billing address")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clients, err := app.Clients.List(ctx)
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No clients yet.")
				return nil
			}

			rows := make([]formatter.ClientListRow, 0, len(clients))
			for _, c := range clients {
				invoices, err := app.Invoices.ListByClient(ctx, c.ID)
				if err != nil {
					return err
				}
				rows = append(rows, formatter.ClientListRow{Client: c, InvoiceCount: len(invoices)})
			}

			fmt.Print(formatter.FormatClientList(rows))
			return nil
		},
	}
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var name, email, phone, code, address string

	cmd := &cobra.Command{
		Use:   "update CLIENT",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("email") {
				c.Email = email
			}
			if cmd.Flags().Changed("phone") {
				c.Phone = phone
			}
			if cmd.Flags().Changed("code") {
				c.CompanyCode = code
			}
			if cmd.Flags().Changed("address") {
				c.Address = address
			}

			if err := app.Clients.Update(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Updated client %s\n", c.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&code, "code", "", "Company registration code")
	cmd.Flags().StringVar(&address, "address", "", "Billing address")

	return cmd
}

func newClientRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove CLIENT",
		Short: "Remove a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Println("Client removed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even when the client has invoices (removes them too)")

	return cmd
}
