package main

import (
	"context"

	"crm/internal/config"
	"crm/pkg/domain"
	"crm/pkg/logger"
	"crm/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that creates the company row
// and an initial user, for local development and demos.
func seedCommand(cfg *config.Config) *cobra.Command {
	var (
		companyDomain string
		employees     int
		userEmail     string
		userType      string
		confirmed     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds the database with a company and an initial user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			err := strg.WithTx(ctx, func(tx storage.AllStorage) error {
				if err := tx.AddCompany(ctx, domain.NewCompany(companyDomain, employees)); err != nil {
					return err
				}

				user := domain.NewUser(0, userEmail, domain.UserType(userType), confirmed)

				return tx.SaveUser(ctx, user)
			})
			if err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}

			logger.Info(ctx, "database seeded",
				zap.String("company", companyDomain),
				zap.String("user", userEmail))
		},
	}

	cmd.Flags().StringVar(&companyDomain, "company-domain", "mycorp.com", "Corporate email domain")
	cmd.Flags().IntVar(&employees, "employees", 1, "Initial number of employees")
	cmd.Flags().StringVar(&userEmail, "user-email", "user@mycorp.com", "Email of the seeded user")
	cmd.Flags().StringVar(&userType, "user-type", string(domain.UserTypeEmployee), "Type of the seeded user (Customer or Employee)")
	cmd.Flags().BoolVar(&confirmed, "confirmed", false, "Whether the seeded user's email is confirmed")

	return cmd
}
