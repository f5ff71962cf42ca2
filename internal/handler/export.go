package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/adagency/backend/internal/model"
)

// wantsCSV reports whether an admin list was requested as a CSV download.
func wantsCSV(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), "csv")
}

func writeCSV(w http.ResponseWriter, r *http.Request, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		slog.WarnContext(r.Context(), "write csv header", "file", filename, "error", err)
		return
	}
	if err := cw.WriteAll(rows); err != nil {
		slog.WarnContext(r.Context(), "write csv rows", "file", filename, "error", err)
	}
}

var (
	contactCSVHeader    = []string{"ID", "Name", "Email", "Subject", "Message", "Created At"}
	newsletterCSVHeader = []string{"ID", "Email", "Created At", "Active"}
	bookingCSVHeader    = []string{"ID", "Name", "Email", "Company", "Phone", "Consultation Type", "Date", "Time", "Notes", "Created At"}
)

func contactCSVRows(list []*model.ContactSubmission) [][]string {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			csvText(s.Name),
			csvText(s.Email),
			csvText(s.Subject),
			csvText(s.Message),
			csvTime(s.CreatedAt),
		})
	}
	return rows
}

func newsletterCSVRows(list []*model.NewsletterSubscription) [][]string {
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			csvText(s.Email),
			csvTime(s.CreatedAt),
			strconv.FormatBool(s.Active),
		})
	}
	return rows
}

func bookingCSVRows(list []*model.CallBooking) [][]string {
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			csvText(b.Name),
			csvText(b.Email),
			csvOptional(b.Company),
			csvOptional(b.Phone),
			csvText(b.ConsultationType),
			csvText(b.Date),
			csvText(b.Time),
			csvOptional(b.Notes),
			csvTime(b.CreatedAt),
		})
	}
	return rows
}

func csvTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// csvOptional renders a missing value as "-" and folds newlines so each
// booking stays on one spreadsheet row.
func csvOptional(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return csvText(strings.Join(strings.Fields(*s), " "))
}

// csvText prefixes cells that a spreadsheet would evaluate as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
