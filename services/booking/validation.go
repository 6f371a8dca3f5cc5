package booking

import (
	"regexp"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateSchedule checks the Schedule step: a date no earlier than
// today and a slot from the fixed set. Both must be present before the
// wizard may advance to Details.
func validateSchedule(date, slot string, now time.Time) *ValidationError {
	fields := make(map[string]string)

	if date == "" {
		fields["date"] = "Date is required"
	} else if d, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		fields["date"] = "Date must be in YYYY-MM-DD format"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		if d.Before(today) {
			fields["date"] = "Date cannot be in the past"
		}
	}

	if slot == "" {
		fields["timeSlot"] = "Time slot is required"
	} else if !IsValidSlot(slot) {
		fields["timeSlot"] = "Time slot is not offered"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// validateDetails checks the Details step against the schema the web
// form uses: name min 2, phone min 10, valid email, address min 10.
func validateDetails(name, email, phone, address string) *ValidationError {
	fields := make(map[string]string)

	if len(strings.TrimSpace(name)) < 2 {
		fields["name"] = "Name is required"
	}
	if len(strings.TrimSpace(phone)) < 10 {
		fields["phone"] = "Valid phone number is required"
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		fields["email"] = "Valid email is required"
	}
	if len(strings.TrimSpace(address)) < 10 {
		fields["address"] = "Full address is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
