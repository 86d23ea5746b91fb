package birthday

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

type Tier string

const (
	None     Tier = ""
	Today    Tier = "birthday_today"
	Tomorrow Tier = "birthday_tomorrow"
	Week     Tier = "birthday_week"
	Month    Tier = "birthday_month"
)

const (
	weekDays  = 7
	monthDays = 30
)

var ErrInvalidBirthday = errors.New("invalid birthday")

type Notice struct {
	DaysUntil int
	Tier      Tier
}

// Check counts whole calendar days in now's location until the next birthday.
// A Feb 29 birthday falls on Mar 1 in non-leap years.
func Check(day, month int, at time.Time) (Notice, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Notice{}, errors.Wrapf(ErrInvalidBirthday, "day %d month %d", day, month)
	}
	if day > daysIn(time.Month(month)) {
		return Notice{}, errors.Wrapf(ErrInvalidBirthday, "day %d month %d", day, month)
	}

	today := now.With(at).BeginningOfDay()
	next := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = time.Date(today.Year()+1, time.Month(month), day, 0, 0, 0, 0, today.Location())
	}

	days := daysBetween(today, next)
	return Notice{DaysUntil: days, Tier: tierOf(days)}, nil
}

// Message is empty when the birthday is more than a month away.
func (n Notice) Message(name string) string {
	switch n.Tier {
	case Today:
		return fmt.Sprintf("🎉 Happy Birthday %s! Hope you have a wonderful day!", name)
	case Tomorrow:
		return fmt.Sprintf("🎂 %s's birthday is tomorrow! Don't forget to get cake ingredients!", name)
	case Week:
		return fmt.Sprintf("🎈 %s's birthday is in %d days. Time to plan the celebration!", name, n.DaysUntil)
	case Month:
		return fmt.Sprintf("📅 %s's birthday is coming up in %d days.", name, n.DaysUntil)
	}
	return ""
}

func tierOf(days int) Tier {
	switch {
	case days == 0:
		return Today
	case days == 1:
		return Tomorrow
	case days <= weekDays:
		return Week
	case days <= monthDays:
		return Month
	}
	return None
}

// daysBetween is DST-safe: both ends are midnights in the same location.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func daysIn(m time.Month) int {
	// leap year so that Feb 29 is accepted
	return time.Date(2000, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
