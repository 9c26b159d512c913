package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fuel-station-api/internal/domain"
)

func productRecord(productID int64, name string, date int, sales, price float64) domain.DailyRecord {
	return domain.DailyRecord{
		Date:          day(2024, 8, date),
		ProductID:     productID,
		ProductName:   name,
		SalesQuantity: sales,
		UnitPrice:     price,
	}
}

func TestSummarizeSales(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Diesel", Unit: "L"},
		{ID: 2, Name: "Petrol", Unit: "L"},
		{ID: 3, Name: "LPG", Unit: "Kg"},
	}
	records := []domain.DailyRecord{
		productRecord(1, "Diesel", 1, 100, 90),
		productRecord(2, "Petrol", 1, 50, 100),
		productRecord(1, "Diesel", 3, 150, 92),
		productRecord(9, "Unknown", 3, 999, 1),
	}

	summary, err := SummarizeSales(records, products, domain.NewWindow(day(2024, 8, 1), day(2024, 8, 3)))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Days)
	assert.Equal(t, 3, summary.EntryCount)
	assert.Equal(t, 300.0, summary.TotalQuantity)
	assert.Equal(t, 9000.0+5000.0+13800.0, summary.TotalRevenue)
	assert.Equal(t, 94.0, summary.AvgPrice)
	assert.Equal(t, "Diesel", summary.TopProduct)

	require.Len(t, summary.Daily, 3)
	assert.Equal(t, DailySalesEntry{Date: "2024-08-02"}, summary.Daily[1])
	assert.Equal(t, 150.0, summary.Daily[0].Quantity)
	assert.Equal(t, 95.0, summary.Daily[0].Price)

	require.Len(t, summary.Products, 3)
	assert.Equal(t, 250.0, summary.Products[0].TotalQuantity)
	assert.Equal(t, 83.33, summary.Products[0].SharePct)
	assert.Equal(t, ProductSales{ProductID: 3, ProductName: "LPG"}, summary.Products[2])
}

func TestSummarizeSales_InvalidWindow(t *testing.T) {
	_, err := SummarizeSales(nil, nil, domain.Window{Start: day(2024, 8, 2), End: day(2024, 8, 1)})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestComparePeriods(t *testing.T) {
	current := []domain.DailyRecord{
		productRecord(1, "Diesel", 1, 100, 10),
		productRecord(1, "Diesel", 2, 300, 10),
		productRecord(2, "Petrol", 2, 100, 10),
		productRecord(1, "Diesel", 5, 50, 10),
	}
	previous := []domain.DailyRecord{
		{Date: day(2024, 7, 10), SalesQuantity: 400, UnitPrice: 10},
	}
	yearAgo := []domain.DailyRecord{
		{Date: day(2023, 8, 10), SalesQuantity: 1100, UnitPrice: 10},
	}

	perf, err := ComparePeriods(day(2024, 8, 20), current, previous, yearAgo)
	require.NoError(t, err)

	assert.Equal(t, "2024-08", perf.Month)
	assert.Equal(t, 5500.0, perf.CurrentRevenue)
	assert.Equal(t, 4000.0, perf.PreviousRevenue)
	assert.Equal(t, 37.5, perf.MonthOnMonthGrowth)
	assert.Equal(t, -50.0, perf.YearOnYearGrowth)
	assert.Equal(t, GrowthExceptional, perf.GrowthTrend)
	assert.Equal(t, 3, perf.WorkingDays)
	assert.Len(t, perf.Daily, 31)
	require.NotNil(t, perf.BestDay)
	assert.Equal(t, DayRevenue{Date: "2024-08-02", Revenue: 4000}, *perf.BestDay)
	assert.Equal(t, DayRevenue{Date: "2024-08-05", Revenue: 500}, *perf.WorstDay)
	assert.Equal(t, 1833.33, perf.AvgDailyRevenue)
	assert.Equal(t, domain.SeverityOK, perf.Alerts()[0].Severity)
}

func TestComparePeriods_NoPreviousMonth(t *testing.T) {
	perf, err := ComparePeriods(day(2024, 2, 1), nil, nil, nil)
	require.NoError(t, err)

	assert.Len(t, perf.Daily, 29)
	assert.Equal(t, 0.0, perf.MonthOnMonthGrowth)
	assert.Nil(t, perf.BestDay)
	assert.Equal(t, GrowthSlightDecline, perf.GrowthTrend)
}

func TestClassifyGrowth(t *testing.T) {
	assert.Equal(t, GrowthStrong, ClassifyGrowth(20))
	assert.Equal(t, GrowthPositive, ClassifyGrowth(10))
	assert.Equal(t, GrowthSlightDecline, ClassifyGrowth(0))
	assert.Equal(t, GrowthSignificantDecline, ClassifyGrowth(-10))
}

func TestSummarizePayroll(t *testing.T) {
	salaries := []domain.SalaryRecord{
		{EmployeeID: 1, Month: "2024-07", NetSalary: 18000.10, Status: domain.SalaryPaid},
		{EmployeeID: 2, Month: "2024-07", NetSalary: 12000.20, Status: domain.SalaryPending},
		{EmployeeID: 3, Month: "2024-07", NetSalary: 9000, Status: domain.SalaryPending},
	}

	summary := SummarizePayroll(salaries, staff("Ana", "Bruno"))

	assert.Equal(t, 39000.30, summary.TotalSalary)
	assert.Equal(t, 21000.20, summary.PendingAmount)
	assert.Equal(t, 2, summary.PendingCount)
	assert.Equal(t, 1, summary.PaidCount)
	assert.Equal(t, "Bruno", summary.Entries[1].EmployeeName)
	assert.Equal(t, "", summary.Entries[2].EmployeeName)

	alerts := summary.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertKindPayroll, alerts[0].Kind)
	assert.Contains(t, alerts[0].Message, "2 pending salary payments")

	assert.Empty(t, SummarizePayroll(nil, nil).Alerts())
}
