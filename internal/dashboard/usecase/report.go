package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
)

const (
	reportRecentTransactions = 5
	reportTopMethods         = 3
	reportSystemStatus       = "operational"
)

// BuildReport assembles the export snapshot. It reads state only; two calls
// without intervening mutations differ in GeneratedAt alone.
func (u *Usecase) BuildReport(ctx context.Context) entity.Report {
	ds := u.store.Snapshot(ctx)

	active := 0
	for _, t := range ds.Tickets {
		if t.Status != entity.TicketStatusResolved {
			active++
		}
	}

	recent := ds.Transactions
	if len(recent) > reportRecentTransactions {
		recent = recent[:reportRecentTransactions]
	}

	return entity.Report{
		GeneratedAt:        u.now(),
		TransactionVolume:  ds.Metrics.TransactionVolume,
		SuccessRate:        ds.Metrics.SuccessRate,
		ResponseTime:       ds.Metrics.ResponseTime,
		ErrorRate:          ds.Metrics.ErrorRate,
		ActiveIssues:       active,
		SystemStatus:       reportSystemStatus,
		TopPaymentMethods:  topPaymentMethods(ds.PaymentMethods, reportTopMethods),
		RecentTransactions: slices.Clone(recent),
	}
}

// ReportFilename is the suggested download name for a report.
func ReportFilename(r entity.Report) string {
	return fmt.Sprintf("paywatch-report-%s.json", r.GeneratedAt.UTC().Format("2006-01-02"))
}

func topPaymentMethods(shares []entity.PaymentMethodShare, n int) []string {
	sorted := slices.Clone(shares)
	slices.SortStableFunc(sorted, func(a, b entity.PaymentMethodShare) int {
		return cmp.Compare(b.Percent, a.Percent)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]string, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, fmt.Sprintf("%s (%d%%)", s.Method, s.Percent))
	}
	return out
}
