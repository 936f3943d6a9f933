package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/bddgen/internal/app"
	"github.com/doeshing/bddgen/internal/application/doctor"
	"github.com/doeshing/bddgen/internal/domain"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, storage and API key setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := &doctor.Service{
				ConfigProvider: container.ConfigLoader,
				HistoryStore:   container.HistoryStore,
				SettingsStore:  container.SettingsStore,
			}
			report, err := service.Run(cmd.Context())
			for _, check := range report.Checks {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-14s %s\n", statusTag(check.Status), check.Name, check.Details)
			}
			return err
		},
	}
}

func statusTag(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return "ok"
	case domain.HealthWarn:
		return "warn"
	default:
		return "FAIL"
	}
}
