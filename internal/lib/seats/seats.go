package seats

// Available computes how many seats remain for an event given its
// capacity and the guest counts of its confirmed bookings. Never negative.
func Available(capacity int, confirmedGuests []int) int {
	booked := 0
	for _, g := range confirmedGuests {
		booked += g
	}
	return Remaining(capacity, booked)
}

// Remaining floors capacity minus booked at zero.
func Remaining(capacity, booked int) int {
	if booked >= capacity {
		return 0
	}
	return capacity - booked
}
