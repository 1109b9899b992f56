package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/eduverse-api/internal/models"
	appErrors "github.com/noah-isme/eduverse-api/pkg/errors"
	"github.com/noah-isme/eduverse-api/pkg/export"
)

type exportReader interface {
	GetTimetable(ctx context.Context, ownerID string) ([]models.TimeTableEntry, models.DataSource)
	GetTasks(ctx context.Context, ownerID string) ([]models.Task, models.DataSource)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type xlsxRenderer interface {
	Render(data export.Dataset, grids ...export.Grid) ([]byte, error)
}

type icsRenderer interface {
	Render(name string, events []export.Event) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Format      export.Format
	Filename    string
	ContentType string
	Body        []byte
	Source      models.DataSource
}

// ExportServiceParams configures an ExportService. Nil renderers get the defaults.
type ExportServiceParams struct {
	Data   exportReader
	CSV    csvRenderer
	PDF    pdfRenderer
	XLSX   xlsxRenderer
	ICS    icsRenderer
	Logger *zap.Logger
	Clock  func() time.Time
}

// ExportService renders timetables and task lists for download. It reads through the
// data access layer, so fallback records export like remote ones.
type ExportService struct {
	data   exportReader
	csv    csvRenderer
	pdf    pdfRenderer
	xlsx   xlsxRenderer
	ics    icsRenderer
	logger *zap.Logger
	now    func() time.Time
}

var timetableHeaders = []string{"Day", "Start", "End", "Subject", "Room", "Teacher"}

var taskHeaders = []string{"Title", "Subject", "Due Date", "Status", "Type", "Estimated Minutes", "Description"}

var icsWeekdays = map[string]string{
	models.Monday:    "MO",
	models.Tuesday:   "TU",
	models.Wednesday: "WE",
	models.Thursday:  "TH",
	models.Friday:    "FR",
}

// NewExportService constructs an ExportService.
func NewExportService(params ExportServiceParams) *ExportService {
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Clock == nil {
		params.Clock = time.Now
	}
	if params.CSV == nil {
		params.CSV = export.NewCSVExporter()
	}
	if params.PDF == nil {
		params.PDF = export.NewPDFExporter()
	}
	if params.XLSX == nil {
		params.XLSX = export.NewXLSXExporter()
	}
	if params.ICS == nil {
		params.ICS = export.NewICSExporter()
	}
	return &ExportService{
		data:   params.Data,
		csv:    params.CSV,
		pdf:    params.PDF,
		xlsx:   params.XLSX,
		ics:    params.ICS,
		logger: params.Logger,
		now:    params.Clock,
	}
}

// ExportTimetable renders the owner's weekly schedule.
func (s *ExportService) ExportTimetable(ctx context.Context, ownerID, rawFormat string) (*ExportFile, error) {
	format, err := parseExportFormat(rawFormat)
	if err != nil {
		return nil, err
	}

	entries, source := s.data.GetTimetable(ctx, ownerID)
	sortTimetable(entries)

	dataset := export.Dataset{Title: "Weekly Timetable", Headers: timetableHeaders}
	for _, entry := range entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Day":     entry.Day,
			"Start":   entry.StartTime,
			"End":     entry.EndTime,
			"Subject": entry.Subject,
			"Room":    entry.Room,
			"Teacher": entry.Teacher,
		})
	}

	var body []byte
	switch format {
	case export.FormatXLSX:
		body, err = s.xlsx.Render(dataset, weeklyGrid(entries))
	case export.FormatICS:
		var events []export.Event
		events, err = s.timetableEvents(entries)
		if err == nil {
			body, err = s.ics.Render(dataset.Title, events)
		}
	default:
		body, err = s.renderTable(format, dataset)
	}
	if err != nil {
		s.logger.Error("timetable export failed", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable")
	}

	return s.file(format, "timetable", ownerID, body, source), nil
}

// ExportTasks renders the owner's task list ordered by due date.
func (s *ExportService) ExportTasks(ctx context.Context, ownerID, rawFormat string) (*ExportFile, error) {
	format, err := parseExportFormat(rawFormat)
	if err != nil {
		return nil, err
	}

	tasks, source := s.data.GetTasks(ctx, ownerID)
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].DueDate.Before(tasks[j].DueDate) })

	dataset := export.Dataset{Title: "Tasks", Headers: taskHeaders}
	for _, task := range tasks {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Title":             task.Title,
			"Subject":           task.Subject,
			"Due Date":          task.DueDate.Format("2006-01-02"),
			"Status":            string(task.Status),
			"Type":              string(task.Type),
			"Estimated Minutes": strconv.Itoa(task.EstimatedTimeMinutes),
			"Description":       task.Description,
		})
	}

	var body []byte
	switch format {
	case export.FormatXLSX:
		body, err = s.xlsx.Render(dataset)
	case export.FormatICS:
		body, err = s.ics.Render(dataset.Title, taskEvents(tasks))
	default:
		body, err = s.renderTable(format, dataset)
	}
	if err != nil {
		s.logger.Error("task export failed", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render tasks")
	}

	return s.file(format, "tasks", ownerID, body, source), nil
}

func parseExportFormat(raw string) (export.Format, error) {
	format, ok := export.ParseFormat(raw)
	if !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
	}
	return format, nil
}

func (s *ExportService) renderTable(format export.Format, dataset export.Dataset) ([]byte, error) {
	if format == export.FormatPDF {
		return s.pdf.Render(dataset)
	}
	return s.csv.Render(dataset)
}

func (s *ExportService) file(format export.Format, kind, ownerID string, body []byte, source models.DataSource) *ExportFile {
	base := fmt.Sprintf("%s_%s_%s", kind, sanitizeFilename(ownerID), s.now().UTC().Format("20060102"))
	return &ExportFile{
		Format:      format,
		Filename:    format.Filename(base),
		ContentType: format.ContentType(),
		Body:        body,
		Source:      source,
	}
}

// timetableEvents turns weekly slots into recurring events starting at their next
// occurrence.
func (s *ExportService) timetableEvents(entries []models.TimeTableEntry) ([]export.Event, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	events := make([]export.Event, 0, len(entries))
	for _, entry := range entries {
		byDay, ok := icsWeekdays[entry.Day]
		if !ok {
			return nil, fmt.Errorf("entry %s has unknown day %q", entry.ID, entry.Day)
		}
		date := nextWeekday(today, entry.Day)
		start, err := atClock(date, entry.StartTime)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ID, err)
		}
		end, err := atClock(date, entry.EndTime)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.ID, err)
		}

		description := ""
		if entry.Teacher != "" {
			description = "Teacher: " + entry.Teacher
		}
		events = append(events, export.Event{
			UID:         entry.ID + "@eduverse",
			Summary:     entry.Subject,
			Description: description,
			Location:    entry.Room,
			Start:       start,
			End:         end,
			Rule:        "FREQ=WEEKLY;BYDAY=" + byDay,
		})
	}
	return events, nil
}

func taskEvents(tasks []models.Task) []export.Event {
	events := make([]export.Event, 0, len(tasks))
	for _, task := range tasks {
		duration := time.Duration(task.EstimatedTimeMinutes) * time.Minute
		if duration <= 0 {
			duration = time.Hour
		}
		events = append(events, export.Event{
			UID:         task.ID + "@eduverse",
			Summary:     fmt.Sprintf("%s: %s", task.Subject, task.Title),
			Description: task.Description,
			Start:       task.DueDate.UTC(),
			End:         task.DueDate.UTC().Add(duration),
		})
	}
	return events
}

// weeklyGrid lays entries out with one row per time slot and one column per school day.
func weeklyGrid(entries []models.TimeTableEntry) export.Grid {
	slots := []string{}
	cells := map[string]map[string][]string{}
	for _, entry := range entries {
		slot := entry.StartTime + " - " + entry.EndTime
		if _, ok := cells[slot]; !ok {
			cells[slot] = map[string][]string{}
			slots = append(slots, slot)
		}
		label := entry.Subject
		if entry.Room != "" {
			label = fmt.Sprintf("%s (%s)", entry.Subject, entry.Room)
		}
		cells[slot][entry.Day] = append(cells[slot][entry.Day], label)
	}
	sort.Strings(slots)

	grid := export.Grid{Name: "Week", Columns: append([]string{"Time"}, models.SchoolDays...)}
	for _, slot := range slots {
		row := []string{slot}
		for _, day := range models.SchoolDays {
			row = append(row, strings.Join(cells[slot][day], " / "))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func sortTimetable(entries []models.TimeTableEntry) {
	order := map[string]int{}
	for i, day := range models.SchoolDays {
		order[day] = i
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return order[entries[i].Day] < order[entries[j].Day]
		}
		return entries[i].StartTime < entries[j].StartTime
	})
}

func nextWeekday(from time.Time, day string) time.Time {
	target := time.Monday
	for i, name := range models.SchoolDays {
		if name == day {
			target = time.Monday + time.Weekday(i)
		}
	}
	offset := (int(target) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, offset)
}

func atClock(date time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", clock)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC), nil
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
