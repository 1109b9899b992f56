package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

const productID = "-//EduVerse//Portal Export//EN"

// Event is one calendar entry. A non-empty Rule is emitted as an RRULE.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Rule        string
}

// ICSExporter renders events into an iCalendar document.
type ICSExporter struct {
	now func() time.Time
}

// NewICSExporter constructs an ICS exporter.
func NewICSExporter() *ICSExporter {
	return &ICSExporter{now: time.Now}
}

// Render serialises the events. An empty event list yields an empty calendar.
func (e *ICSExporter) Render(name string, events []Event) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	if name != "" {
		cal.SetName(name)
	}

	stamp := e.now().UTC()
	for _, ev := range events {
		if ev.UID == "" {
			return nil, fmt.Errorf("ics event %q has no uid", ev.Summary)
		}
		if ev.End.Before(ev.Start) {
			return nil, fmt.Errorf("ics event %s ends before it starts", ev.UID)
		}
		event := cal.AddEvent(ev.UID)
		event.SetDtStampTime(stamp)
		event.SetStartAt(ev.Start)
		event.SetEndAt(ev.End)
		event.SetSummary(ev.Summary)
		if ev.Description != "" {
			event.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			event.SetLocation(ev.Location)
		}
		if ev.Rule != "" {
			event.SetProperty(ics.ComponentPropertyRrule, ev.Rule)
		}
	}

	return []byte(cal.Serialize()), nil
}
