package utils

import "time"

// CalculateAge returns whole years between birthday and now, decremented by
// one when the birthday has not yet occurred this year.
func CalculateAge(birthday, now time.Time) int {
	age := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() ||
		(now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		age--
	}
	return age
}
