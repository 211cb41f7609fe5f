package reports

import (
	"net/http"
	"sort"
	"time"

	"github.com/cueshop/station-ledger/pkg/handlers"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ReportsHandler aggregates the payment log into admin revenue summaries.
type ReportsHandler struct {
	Store storage.PaymentStore
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(store storage.PaymentStore) *ReportsHandler {
	return &ReportsHandler{Store: store}
}

// Routes mounts the report endpoints.
func (h *ReportsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/revenue", h.Revenue)
	return r
}

// DayRevenue is one day's collected total.
type DayRevenue struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
}

// RevenueReport summarizes collected money over a date range.
type RevenueReport struct {
	From     string                         `json:"from,omitempty"`
	To       string                         `json:"to,omitempty"`
	Total    int64                          `json:"total"`
	ByMethod map[models.PaymentMethod]int64 `json:"by_method"`
	Days     []DayRevenue                   `json:"days"`
}

const dateLayout = "2006-01-02"

// Revenue aggregates payments into totals by method and by day. The range is
// inclusive of both bounds; an open bound is left out. Bounds and day buckets
// are UTC days, whatever zone the payment was stamped in.
func (h *ReportsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	var err error
	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err = time.Parse(dateLayout, raw); err != nil {
			http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if to, err = time.Parse(dateLayout, raw); err != nil {
			http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		// Inclusive upper bound: cover the whole day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	report := RevenueReport{
		ByMethod: make(map[models.PaymentMethod]int64),
	}
	if !from.IsZero() {
		report.From = from.Format(dateLayout)
	}
	if !to.IsZero() {
		report.To = to.Format(dateLayout)
	}

	byDay := make(map[string]int64)
	for _, payment := range payments {
		date := payment.Date.UTC()
		if !from.IsZero() && date.Before(from) {
			continue
		}
		if !to.IsZero() && date.After(to) {
			continue
		}
		report.Total += payment.Amount
		report.ByMethod[payment.Method] += payment.Amount
		byDay[date.Format(dateLayout)] += payment.Amount
	}

	report.Days = make([]DayRevenue, 0, len(byDay))
	for date, total := range byDay {
		report.Days = append(report.Days, DayRevenue{Date: date, Total: total})
	}
	sort.Slice(report.Days, func(i, j int) bool { return report.Days[i].Date < report.Days[j].Date })

	handlers.WriteJSON(w, http.StatusOK, report)
}
