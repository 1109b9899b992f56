package export

import "strings"

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatICS  Format = "ics"
)

// ParseFormat normalises a user supplied format name. Empty defaults to CSV.
func ParseFormat(raw string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FormatCSV, true
	case FormatCSV, FormatPDF, FormatXLSX, FormatICS:
		return f, true
	default:
		return "", false
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatICS:
		return "text/calendar; charset=utf-8"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Filename builds an attachment name with the format's extension.
func (f Format) Filename(base string) string {
	return base + "." + string(f)
}
