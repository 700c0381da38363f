package contact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/contact"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recordWithBirthday(t *testing.T, name, birthday string) contact.Record {
	t.Helper()
	rec, err := contact.NewRecord(name)
	require.NoError(t, err)
	if birthday != "" {
		require.NoError(t, rec.SetBirthday(birthday))
	}
	return rec
}

func TestUpcomingBirthdays(t *testing.T) {
	// 2024-05-10 is a Friday.
	ref := date(2024, time.May, 10)

	t.Run("includes weekday occurrence without shift", func(t *testing.T) {
		// 2024-05-13 is a Monday, three days out.
		records := []contact.Record{recordWithBirthday(t, "John", "13.05.1985")}

		got := contact.UpcomingBirthdays(records, ref)

		require.Len(t, got, 1)
		assert.Equal(t, "John", got[0].Name)
		assert.Equal(t, date(2024, time.May, 13), got[0].Date)
	})

	t.Run("shifts Saturday occurrence forward two days", func(t *testing.T) {
		// 2024-05-11 is a Saturday.
		records := []contact.Record{recordWithBirthday(t, "Jane", "11.05.1990")}

		got := contact.UpcomingBirthdays(records, ref)

		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.May, 13), got[0].Date)
	})

	t.Run("shifts Sunday occurrence forward one day", func(t *testing.T) {
		// 2024-05-12 is a Sunday.
		records := []contact.Record{recordWithBirthday(t, "Bob", "12.05.1970")}

		got := contact.UpcomingBirthdays(records, ref)

		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.May, 13), got[0].Date)
	})

	t.Run("window is inclusive at zero days", func(t *testing.T) {
		records := []contact.Record{recordWithBirthday(t, "Sam", "10.05.2000")}

		got := contact.UpcomingBirthdays(records, ref)

		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.May, 10), got[0].Date)
	})

	t.Run("window is inclusive at seven days even when shifted past it", func(t *testing.T) {
		// 2024-05-17 is a Friday, exactly seven days out; inclusion is
		// decided before any weekend shift.
		records := []contact.Record{recordWithBirthday(t, "Eve", "17.05.1995")}

		got := contact.UpcomingBirthdays(records, ref)

		require.Len(t, got, 1)
		assert.Equal(t, date(2024, time.May, 17), got[0].Date)
	})

	t.Run("shifted date may land outside the window", func(t *testing.T) {
		// 2024-05-18 is a Saturday eight days out: excluded on the raw diff
		// even though unshifted.
		records := []contact.Record{recordWithBirthday(t, "Max", "18.05.1995")}

		assert.Empty(t, contact.UpcomingBirthdays(records, ref))
	})

	t.Run("excludes occurrence eight days out", func(t *testing.T) {
		records := []contact.Record{recordWithBirthday(t, "Max", "20.05.1995")}

		assert.Empty(t, contact.UpcomingBirthdays(records, ref))
	})

	t.Run("rolls over to next year when birthday already passed", func(t *testing.T) {
		refDec := date(2024, time.December, 30)
		// Next occurrence is 2025-01-02, three days out, a Thursday.
		records := []contact.Record{recordWithBirthday(t, "Ann", "02.01.1988")}

		got := contact.UpcomingBirthdays(records, refDec)

		require.Len(t, got, 1)
		assert.Equal(t, date(2025, time.January, 2), got[0].Date)
	})

	t.Run("observes February 29 on March 1 in common years", func(t *testing.T) {
		refFeb := date(2023, time.February, 25)
		records := []contact.Record{recordWithBirthday(t, "Leap", "29.02.2000")}

		got := contact.UpcomingBirthdays(records, refFeb)

		require.Len(t, got, 1)
		// 2023-03-01 is a Wednesday.
		assert.Equal(t, date(2023, time.March, 1), got[0].Date)
	})

	t.Run("skips records without a birthday", func(t *testing.T) {
		records := []contact.Record{
			recordWithBirthday(t, "NoBday", ""),
			recordWithBirthday(t, "John", "13.05.1985"),
		}

		got := contact.UpcomingBirthdays(records, ref)

		require.Len(t, got, 1)
		assert.Equal(t, "John", got[0].Name)
	})

	t.Run("preserves input order", func(t *testing.T) {
		records := []contact.Record{
			recordWithBirthday(t, "Second", "14.05.1990"),
			recordWithBirthday(t, "First", "13.05.1990"),
		}

		got := contact.UpcomingBirthdays(records, ref)

		require.Len(t, got, 2)
		assert.Equal(t, "Second", got[0].Name)
		assert.Equal(t, "First", got[1].Name)
	})
}
