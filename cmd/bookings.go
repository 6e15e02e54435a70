package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cinema-booking-cli/booking"
	"cinema-booking-cli/config"
	"cinema-booking-cli/store"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your saved bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		st := store.Open(cfg.BookingsPath())

		bookings := st.Bookings()
		if len(bookings) == 0 {
			fmt.Println("You have no bookings yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Movie", "Date", "Time", "Seats", "Total"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, WidthMax: 24},
		})
		t.Style().Options.SeparateRows = true

		for _, b := range bookings {
			t.AppendRow(table.Row{
				b.Movie.Title,
				b.SessionDate.Format("Mon 02 Jan 2006"),
				b.SessionTime,
				b.SeatLabel(),
				fmt.Sprintf("$%d.00", len(b.Seats)*booking.TicketPrice),
			})
		}
		t.Render()
		return nil
	},
}
