package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shandysiswandi/paywatch/internal/dashboard/entity"
	"github.com/shandysiswandi/paywatch/internal/pkg/pkgerror"
)

const (
	ChartTransactions   = "transactions"
	ChartPaymentMethods = "payment-methods"
	ChartResponseTime   = "response-time"
	ChartVolume         = "volume"
	ChartSuccessRate    = "success-rate"
)

var (
	weekDays          = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weeklyVolumes     = []float64{12000, 15000, 13500, 16800, 14200, 11500, 9800}
	weeklySuccessRate = []float64{99.5, 99.8, 99.2, 99.9, 99.7, 99.4, 99.6}
)

// Chart builds the named chart series. The hourly transaction and response
// time charts are random mock data anchored at the current time.
func (u *Usecase) Chart(ctx context.Context, name string) (entity.ChartSeries, error) {
	switch name {
	case ChartTransactions:
		return u.hourlyTransactions(), nil
	case ChartPaymentMethods:
		return u.paymentMethodChart(ctx), nil
	case ChartResponseTime:
		return u.responseTimes(), nil
	case ChartVolume:
		return entity.ChartSeries{
			Name:   ChartVolume,
			Label:  "Transaction Volume",
			Kind:   "bar",
			Labels: append([]string(nil), weekDays...),
			Values: append([]float64(nil), weeklyVolumes...),
		}, nil
	case ChartSuccessRate:
		return entity.ChartSeries{
			Name:   ChartSuccessRate,
			Label:  "Success Rate (%)",
			Kind:   "line",
			Labels: append([]string(nil), weekDays...),
			Values: append([]float64(nil), weeklySuccessRate...),
		}, nil
	default:
		return entity.ChartSeries{}, pkgerror.NewBusiness(fmt.Sprintf("chart %q not found", name), pkgerror.CodeNotFound)
	}
}

func (u *Usecase) hourlyTransactions() entity.ChartSeries {
	now := u.clock.Now()
	series := entity.ChartSeries{Name: ChartTransactions, Label: "Transactions", Kind: "line"}

	for i := 23; i >= 0; i-- {
		hour := now.Add(-time.Duration(i) * time.Hour)
		series.Labels = append(series.Labels, fmt.Sprintf("%d:00", hour.Hour()))
		series.Values = append(series.Values, float64(u.random.IntN(500)+100))
	}
	return series
}

func (u *Usecase) responseTimes() entity.ChartSeries {
	now := u.clock.Now()
	series := entity.ChartSeries{Name: ChartResponseTime, Label: "Response Time (ms)", Kind: "line"}

	for i := 11; i >= 0; i-- {
		at := now.Add(-time.Duration(i*5) * time.Minute)
		series.Labels = append(series.Labels, at.Format("15:04"))
		series.Values = append(series.Values, float64(u.random.IntN(200)+200))
	}
	return series
}

func (u *Usecase) paymentMethodChart(ctx context.Context) entity.ChartSeries {
	series := entity.ChartSeries{Name: ChartPaymentMethods, Label: "Payment Methods", Kind: "doughnut"}

	for _, share := range u.store.PaymentMethods(ctx) {
		series.Labels = append(series.Labels, share.Method)
		series.Values = append(series.Values, float64(share.Percent))
	}
	return series
}
