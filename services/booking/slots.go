package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSlots is the fixed set of labels offered on the Schedule step.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "02:00 PM", "03:00 PM",
	"04:00 PM", "05:00 PM", "06:00 PM",
}

// IsValidSlot reports whether the label is one of the offered slots.
func IsValidSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

// ParseSlot maps a 12-hour "HH:MM AM/PM" label to 24-hour clock values.
// 12 AM maps to hour 0, 12 PM stays 12, all other PM hours gain 12.
func ParseSlot(label string) (hour, minute int, err error) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", label)
	}
	period := strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return 0, 0, fmt.Errorf("invalid time slot period %q", label)
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", label)
	}
	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot hour %q", label)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot minute %q", label)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time slot out of range %q", label)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour, minute, nil
}

// CombineDateSlot merges a "2006-01-02" date and a slot label into one
// timestamp in the local timezone.
func CombineDateSlot(date, slot string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	hour, minute, err := ParseSlot(slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), nil
}
