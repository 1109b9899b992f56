package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Timetable",
		Headers: []string{"Day", "Start", "Subject"},
		Rows: []map[string]string{
			{"Day": "Monday", "Start": "09:00", "Subject": "Mathematics"},
			{"Day": "Tuesday", "Start": "10:15", "Subject": "Chemistry, Lab B"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Day,Start,Subject", lines[0])
	assert.Equal(t, `Tuesday,10:15,"Chemistry, Lab B"`, lines[2])
}

func TestExportersRequireHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Dataset{})
	assert.Error(t, err)
	_, err = NewXLSXExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestXLSXExporterRenderWithGrid(t *testing.T) {
	grid := Grid{
		Name:    "Week",
		Columns: []string{"Time", "Monday", "Tuesday"},
		Rows:    [][]string{{"09:00-10:00", "Mathematics", ""}},
	}
	out, err := NewXLSXExporter().Render(sampleDataset(), grid)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Week", "List"}, f.GetSheetList())
	value, err := f.GetCellValue("Week", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", value)
	value, err = f.GetCellValue("List", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Chemistry, Lab B", value)
}

func TestICSExporterRender(t *testing.T) {
	exporter := NewICSExporter()
	exporter.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	out, err := exporter.Render("Alex", []Event{{
		UID:      "tt1@eduverse",
		Summary:  "Mathematics",
		Location: "101",
		Start:    start,
		End:      start.Add(time.Hour),
		Rule:     "FREQ=WEEKLY;BYDAY=MO",
	}})
	require.NoError(t, err)

	body := string(out)
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "UID:tt1@eduverse")
	assert.Contains(t, body, "SUMMARY:Mathematics")
	assert.Contains(t, body, "RRULE:FREQ=WEEKLY;BYDAY=MO")
}

func TestICSExporterRejectsInvertedEvent(t *testing.T) {
	start := time.Now()
	_, err := NewICSExporter().Render("", []Event{{UID: "x", Start: start, End: start.Add(-time.Minute)}})
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("")
	assert.True(t, ok)
	assert.Equal(t, FormatCSV, f)

	f, ok = ParseFormat(" XLSX ")
	assert.True(t, ok)
	assert.Equal(t, FormatXLSX, f)
	assert.Equal(t, "timetable.xlsx", f.Filename("timetable"))

	_, ok = ParseFormat("docx")
	assert.False(t, ok)
}
