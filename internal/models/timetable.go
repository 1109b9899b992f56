package models

// Weekday names accepted for timetable entries.
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
)

// SchoolDays lists the weekdays in display order.
var SchoolDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday}

// DefaultTimetableColor is used for entries created without a color tag.
const DefaultTimetableColor = "bg-indigo-100 border-indigo-300 text-indigo-800"

// TimeTableEntry is a weekly schedule slot. Overlapping entries are allowed.
type TimeTableEntry struct {
	ID         string     `json:"id"`
	Day        string     `json:"day"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	Subject    string     `json:"subject"`
	Room       string     `json:"room,omitempty"`
	Teacher    string     `json:"teacher,omitempty"`
	Color      string     `json:"color"`
	Provenance Provenance `json:"provenance,omitempty"`
}
