package bookingid

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Confirmation codes look like TG-20251104-153045-0192: a date segment,
// a time segment and a 4-digit random suffix. The suffix comes from a
// non-cryptographic source and is not checked for uniqueness; collisions
// are possible but require two bookings in the same second.
var pattern = regexp.MustCompile(`^TG-\d{8}-\d{6}-\d{4}$`)

const (
	dateLayout = "20060102"
	timeLayout = "150405"
)

// Generate derives a confirmation code from the current wall-clock time.
// Generation cannot fail.
func Generate() string {
	return At(time.Now())
}

// At derives a confirmation code for the given instant.
func At(t time.Time) string {
	return fmt.Sprintf("TG-%s-%s-%04d", t.Format(dateLayout), t.Format(timeLayout), rand.Intn(10000))
}

// IsValid reports whether s matches the exact confirmation code shape.
func IsValid(s string) bool {
	return pattern.MatchString(s)
}

// ValidationCode returns the time-plus-random suffix of a confirmation
// code, a short form for manual verification at the venue door.
func ValidationCode(code string) (string, bool) {
	if !IsValid(code) {
		return "", false
	}
	return code[len("TG-12345678-"):], true
}

// Date parses the date segment of a confirmation code back into the
// calendar date the code was generated on.
func Date(code string) (time.Time, bool) {
	if !IsValid(code) {
		return time.Time{}, false
	}

	d, err := time.Parse(dateLayout, code[len("TG-"):len("TG-")+8])
	if err != nil {
		return time.Time{}, false
	}

	return d, true
}
