package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cinema-booking-cli/config"
	"cinema-booking-cli/model"
	"cinema-booking-cli/store"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel one of your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		st := store.Open(cfg.BookingsPath())

		bookings := st.Bookings()
		if len(bookings) == 0 {
			fmt.Println("You have no bookings to cancel.")
			return nil
		}

		b, err := promptSelectBooking(bookings)
		if err != nil {
			return err
		}

		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Cancel %s on %s at %s", b.Movie.Title, b.SessionDate.Format("02/01"), b.SessionTime),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			fmt.Println("Booking kept.")
			return nil
		}

		if err := st.Cancel(b.ID); err != nil {
			return err
		}
		fmt.Println("Booking cancelled.")
		return nil
	},
}

func promptSelectBooking(bookings []model.Booking) (model.Booking, error) {
	labels := make([]string, 0, len(bookings))
	byLabel := make(map[string]model.Booking, len(bookings))
	for _, b := range bookings {
		label := fmt.Sprintf("%s • %s %s • seats %s",
			b.Movie.Title, b.SessionDate.Format("Mon 02 Jan"), b.SessionTime, b.SeatLabel())
		labels = append(labels, label)
		byLabel[label] = b
	}

	selectBooking := promptui.Select{
		Label: "Select Booking",
		Items: labels,
		Size:  10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(labels[index]), strings.ToLower(input))
		},
	}
	_, label, err := selectBooking.Run()
	if err != nil {
		return model.Booking{}, err
	}
	b, ok := byLabel[label]
	if !ok {
		return model.Booking{}, errors.New("invalid booking")
	}
	return b, nil
}
