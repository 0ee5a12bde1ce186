package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rasan-admin-api/internal/application/analytics"
	"github.com/jhoicas/rasan-admin-api/internal/application/orders"
	"github.com/jhoicas/rasan-admin-api/internal/domain"
)

type fakeReports struct {
	got analytics.ReportData
}

func (f *fakeReports) GenerateDashboardReport(_ context.Context, data analytics.ReportData) ([]byte, error) {
	f.got = data
	return []byte("%PDF-fake"), nil
}

func TestDashboardUseCase_Summary_Custom(t *testing.T) {
	src := &recordingSource{result: okResult("o1", "o2")}
	uc := analytics.NewDashboardUseCase(src, nil, ist)

	out, err := uc.Summary(context.Background(), analytics.SummaryQuery{
		Mode: analytics.DateModeCustom, Start: "2025-01-01", End: "2025-01-02", Status: "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Summary.TotalOrders)
	assert.Equal(t, "20.00", out.Summary.TotalEarnings)
	assert.Equal(t, "Status: Pending, Dates: 2025-01-01 to 2025-01-02", out.FilterLabel)
	assert.True(t, src.calls[0].End.Equal(time.Date(2025, 1, 2, 23, 59, 59, 999999999, ist)))
}

func TestDashboardUseCase_Summary_CustomIncompleto(t *testing.T) {
	src := &recordingSource{}
	uc := analytics.NewDashboardUseCase(src, nil, ist)

	_, err := uc.Summary(context.Background(), analytics.SummaryQuery{Mode: analytics.DateModeCustom, Start: "2025-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, src.count())
}

func TestDashboardUseCase_Summary_ErrorRemoto(t *testing.T) {
	src := &recordingSource{result: orders.FetchResult{Error: "boom"}}
	uc := analytics.NewDashboardUseCase(src, nil, ist)

	_, err := uc.Summary(context.Background(), analytics.SummaryQuery{Mode: analytics.DateModeAll})
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "boom")
}

func TestDashboardUseCase_Report(t *testing.T) {
	reports := &fakeReports{}
	uc := analytics.NewDashboardUseCase(&recordingSource{}, reports, ist)

	pdf, err := uc.Report(context.Background(), analytics.State{FilterLabel: "Status: All Statuses, Dates: Today"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "Status: All Statuses, Dates: Today", reports.got.FilterLabel)
}
