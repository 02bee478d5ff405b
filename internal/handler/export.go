// Package handler: export.go implements GET /export.
// Returns every tour and itinerary day as a flat table.
// Supports ?format=csv, ?format=xlsx, or the default JSON.
package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"
	"github.com/xuri/excelize/v2"

	"github.com/pkordes/tourbook/backend/internal/domain"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Tours"
)

// exportHeaders defines the column names written as the first row of any
// CSV or XLSX export.
var exportHeaders = []string{
	"tour_id", "tour_title", "start_date", "end_date", "base_price",
	"max_participants", "day_number", "location", "day_title",
	"activities", "notes",
}

// exportRow is the JSON shape of one domain.ExportRow.
// Day fields are omitted for tours without an itinerary.
type exportRow struct {
	TourID          string  `json:"tourId"`
	TourTitle       string  `json:"tourTitle"`
	StartDate       string  `json:"startDate,omitempty"`
	EndDate         string  `json:"endDate,omitempty"`
	BasePrice       float64 `json:"basePrice"`
	MaxParticipants int     `json:"maxParticipants"`
	DayNumber       int     `json:"dayNumber,omitempty"`
	Location        string  `json:"location,omitempty"`
	DayTitle        string  `json:"dayTitle,omitempty"`
	Activities      int     `json:"activities,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// GetExport implements GET /export.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeBadRequest(w, "invalid format parameter")
		return
	}
	f := formatJSON
	if format != nil {
		f = *format
	}
	if f != formatJSON && f != formatCSV && f != formatXLSX {
		writeBadRequest(w, "format must be one of: json, csv, xlsx")
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	switch f {
	case formatCSV:
		writeAttachment(w, "text/csv; charset=utf-8", "tours.csv", buildCSV(rows))
	case formatXLSX:
		buf, err := buildXLSX(rows)
		if err != nil {
			s.writeServiceError(w, r, err, "")
			return
		}
		writeAttachment(w, xlsxContentType, "tours.xlsx", buf)
	default:
		out := make([]exportRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, exportRow(row))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// buildCSV encodes rows as CSV with a header line.
func buildCSV(rows []domain.ExportRow) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// bytes.Buffer writes never fail.
	_ = w.Write(exportHeaders)
	for _, r := range rows {
		_ = w.Write(exportRecord(r))
	}
	w.Flush()
	return &buf
}

// buildXLSX writes rows to a single bold-headed sheet.
func buildXLSX(rows []domain.ExportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: %w", err)
	}

	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: style: %w", err)
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			r.TourID, r.TourTitle, r.StartDate, r.EndDate, r.BasePrice,
			r.MaxParticipants, nil, r.Location, r.DayTitle, nil, r.Notes,
		}
		if r.DayNumber > 0 {
			values[6], values[9] = r.DayNumber, r.Activities
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("handler.buildXLSX: row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: write: %w", err)
	}
	return buf, nil
}

// exportRecord encodes a domain.ExportRow as a flat string slice.
// Day columns are blank for tours without an itinerary.
func exportRecord(r domain.ExportRow) []string {
	return []string{
		r.TourID,
		r.TourTitle,
		r.StartDate,
		r.EndDate,
		strconv.FormatFloat(r.BasePrice, 'f', 2, 64),
		strconv.Itoa(r.MaxParticipants),
		dayCount(r, r.DayNumber),
		r.Location,
		r.DayTitle,
		dayCount(r, r.Activities),
		r.Notes,
	}
}

// dayCount renders a per-day number, blank on the row of a tour without days.
func dayCount(r domain.ExportRow, n int) string {
	if r.DayNumber == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
