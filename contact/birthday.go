package contact

import "time"

// upcomingWindowDays is the inclusive lookahead window of the birthday scan.
const upcomingWindowDays = 7

// Congratulation pairs a contact name with the date its birthday should be
// observed on.
type Congratulation struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays returns, in the order records are given, one entry per
// record whose next birthday occurrence falls within upcomingWindowDays of
// ref, today included. The window is measured on the raw occurrence; the
// reported date is shifted off weekends (Saturday +2 days, Sunday +1 day).
//
// A February 29 birthday is observed on March 1 in common years, which is
// how time.Date normalizes the out-of-range day.
func UpcomingBirthdays(records []Record, ref time.Time) []Congratulation {
	today := truncateToDay(ref)

	var result []Congratulation
	for _, r := range records {
		if r.Birthday.IsZero() {
			continue
		}

		bday := r.Birthday.Date()
		occurrence := time.Date(today.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)
		if occurrence.Before(today) {
			occurrence = time.Date(today.Year()+1, bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)
		}

		diffDays := int(occurrence.Sub(today).Hours() / 24)
		if diffDays < 0 || diffDays > upcomingWindowDays {
			continue
		}

		result = append(result, Congratulation{
			Name: r.Name.String(),
			Date: shiftOffWeekend(occurrence),
		})
	}

	return result
}

func shiftOffWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
