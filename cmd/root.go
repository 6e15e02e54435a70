// Package cmd wires the command line surface. The root command starts the
// interactive booking screen; the subcommands are quick non-interactive views
// over the same catalog and booking store.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cinema-booking-cli/catalog"
	"cinema-booking-cli/config"
	"cinema-booking-cli/service"
	"cinema-booking-cli/store"
	"cinema-booking-cli/tui"
)

var rootCmd = &cobra.Command{
	Use:          "cinema",
	Short:        "Book cinema seats from the terminal",
	Long:         `Browse the movie catalog, pick a showtime, choose your seats and keep track of your bookings, all from the terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		movies, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load movie catalog: %w", err)
		}

		st := store.Open(cfg.BookingsPath())
		ratings := service.NewClient(nil, cfg.OMDbAPIKey)

		program := tea.NewProgram(tui.New(movies, st, ratings), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Cinema Booking CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Cinema Booking CLI v0.1")
	},
}

func Execute() {
	rootCmd.AddCommand(moviesCmd, bookingsCmd, cancelCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
