package main

import "cinema-booking-cli/cmd"

func main() {
	cmd.Execute()
}
