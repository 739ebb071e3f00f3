package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"focusquote-backend/internal/cache"
	"focusquote-backend/internal/models"
	"focusquote-backend/internal/repositories"
	"focusquote-backend/internal/timeutil"
)

// QuoteReportStats summarizes a filtered quote report
type QuoteReportStats struct {
	Count         int     `json:"count"`
	ApprovedCount int     `json:"approved_count"`
	PendingCount  int     `json:"pending_count"`
	Revenue       float64 `json:"revenue"`
}

// QuoteReport is the full report payload
type QuoteReport struct {
	Rows  []*repositories.ReportRow `json:"rows"`
	Stats QuoteReportStats          `json:"stats"`
	Start string                    `json:"start"`
	End   string                    `json:"end"`
}

// DashboardStats drives the home screen: counts, approved revenue and
// progress against the profile's monthly goal.
type DashboardStats struct {
	TotalQuotes    int     `json:"total_quotes"`
	ApprovedQuotes int     `json:"approved_quotes"`
	PendingQuotes  int     `json:"pending_quotes"`
	TotalRevenue   float64 `json:"total_revenue"`
	MonthRevenue   float64 `json:"month_revenue"`
	MonthlyGoal    float64 `json:"monthly_goal"`
	GoalProgress   float64 `json:"goal_progress"` // percent, capped at 100
}

type ReportService struct {
	QuoteRepo   *repositories.QuoteRepository
	ProfileRepo *repositories.ProfileRepository
}

func NewReportService(quoteRepo *repositories.QuoteRepository, profileRepo *repositories.ProfileRepository) *ReportService {
	return &ReportService{QuoteRepo: quoteRepo, ProfileRepo: profileRepo}
}

// ComputeReportStats aggregates report rows. Pending means neither
// approved nor declined; revenue sums approved totals only.
func ComputeReportStats(rows []*repositories.ReportRow) QuoteReportStats {
	var stats QuoteReportStats
	stats.Count = len(rows)
	for _, row := range rows {
		switch row.Status {
		case models.QuoteStatusApproved:
			stats.ApprovedCount++
			stats.Revenue += row.Total
		case models.QuoteStatusDeclined:
			// declined quotes are neither pending nor revenue
		default:
			stats.PendingCount++
		}
	}
	return stats
}

// QuoteReport builds the filtered report for a date range and optional status
func (s *ReportService) QuoteReport(ctx context.Context, userID int, start, end string, status models.QuoteStatus) (*QuoteReport, error) {
	if start == "" || end == "" {
		start, end = DefaultRange()
	}
	if status != "" && !status.Valid() {
		return nil, ErrBadStatus
	}

	rows, err := s.QuoteRepo.ListReportRows(ctx, userID, start, end, status)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*repositories.ReportRow{}
	}

	return &QuoteReport{
		Rows:  rows,
		Stats: ComputeReportStats(rows),
		Start: start,
		End:   end,
	}, nil
}

// WriteCSV streams the report rows as CSV
func (s *ReportService) WriteCSV(report *QuoteReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Numero", "Cliente", "Data", "Status", "Total"}); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		record := []string{
			row.Number,
			row.ClientName,
			row.Date,
			string(row.Status),
			fmt.Sprintf("%.2f", row.Total),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dashboard computes lifetime and current-month stats. Results are cached
// for 5 minutes and invalidated whenever quotes change.
func (s *ReportService) Dashboard(ctx context.Context, userID int) (*DashboardStats, error) {
	key := cache.DashboardKey(userID)
	if data, ok := cache.GetCached(ctx, key); ok {
		var stats DashboardStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
	}

	quotes, err := s.QuoteRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := timeutil.Now()
	monthStart := timeutil.StartOfMonth(now).Format(timeutil.DateLayout)
	today := now.Format(timeutil.DateLayout)

	var stats DashboardStats
	stats.TotalQuotes = len(quotes)
	for _, q := range quotes {
		switch q.Status {
		case models.QuoteStatusApproved:
			stats.ApprovedQuotes++
			stats.TotalRevenue += q.Total
			if strings.Compare(q.Date, monthStart) >= 0 && strings.Compare(q.Date, today) <= 0 {
				stats.MonthRevenue += q.Total
			}
		case models.QuoteStatusDeclined:
		default:
			stats.PendingQuotes++
		}
	}

	profile, err := s.ProfileRepo.GetByUserID(ctx, userID)
	if err == nil && profile.MonthlyGoal > 0 {
		stats.MonthlyGoal = profile.MonthlyGoal
		stats.GoalProgress = stats.MonthRevenue / profile.MonthlyGoal * 100
		if stats.GoalProgress > 100 {
			stats.GoalProgress = 100
		}
	}

	if data, err := json.Marshal(&stats); err == nil {
		cache.SetCached(ctx, key, data, 5*time.Minute)
	}
	return &stats, nil
}
