package pets

import "time"

const birthDateLayout = "2006-01-02"

// AgeInYears returns full years elapsed between birthDate and now.
// Unparseable or future dates count as zero.
func AgeInYears(birthDate string, now time.Time) int {
	born, err := time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return 0
	}
	if born.After(now) {
		return 0
	}

	years := now.Year() - born.Year()
	anniversary := born.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
