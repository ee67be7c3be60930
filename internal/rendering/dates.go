package rendering

import "time"

// FormatDate turns a "YYYY-MM" or "YYYY-MM-DD" date into the "Jan 2006" form
// used on the resume. "present" and the empty string both render as "Present";
// anything unparseable passes through untouched.
func FormatDate(date string) string {
	if date == "" || date == "present" {
		return "Present"
	}

	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2006")
		}
	}

	return date
}
