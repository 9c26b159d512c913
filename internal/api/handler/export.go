package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fuel-station-api/internal/domain"
	"github.com/vfg2006/fuel-station-api/internal/usecases/reporting"
	"github.com/vfg2006/fuel-station-api/pkg/apiErrors"
	"github.com/vfg2006/fuel-station-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

const (
	ExportStock      = "stock"
	ExportPriceTrend = "price-trend"
	ExportDailySales = "daily-sales"
	ExportAttendance = "attendance"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// sheet é o conteúdo tabular de uma planilha exportada
type sheet struct {
	name   string
	header []string
	rows   [][]any
}

// ExportReport gera o detalhamento diário do relatório em XLSX
func ExportReport(service reporting.Reporter, defaults WindowDefaults) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reportType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		window, err := defaults.window(r)
		if err != nil {
			writeParamError(w, err)
			return
		}

		var content sheet
		switch reportType {
		case ExportStock, ExportPriceTrend:
			id, err := productID(r)
			if err != nil {
				writeParamError(w, err)
				return
			}
			if reportType == ExportStock {
				content, err = stockSheet(r, service, window, id)
			} else {
				content, err = priceSheet(r, service, window, id)
			}
			if err != nil {
				writeReportError(w, r, err)
				return
			}
		case ExportDailySales:
			report, err := service.DailySales(r.Context(), window)
			if err != nil {
				writeReportError(w, r, err)
				return
			}
			content = salesSheet(report)
		case ExportAttendance:
			report, err := service.AttendanceHealth(r.Context(), window)
			if err != nil {
				writeReportError(w, r, err)
				return
			}
			content = attendanceSheet(report)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de exportação inválido. Valores aceitos: stock, price-trend, daily-sales, attendance", nil)
			return
		}

		data, err := writeXLSX(content)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		filename := fmt.Sprintf("%s_%s_%s.xlsx", reportType, window.Start.Format(dateLayout), window.End.Format(dateLayout))
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

func stockSheet(r *http.Request, service reporting.Reporter, window domain.Window, productID int64) (sheet, error) {
	report, err := service.StockForecast(r.Context(), window, productID)
	if err != nil {
		return sheet{}, err
	}

	content := sheet{
		name:   "Stock",
		header: []string{"Date", "Product", "Opening Stock", "Closing Stock", "Delivery", "Consumption", "Recorded"},
	}
	for _, e := range report.Forecast.Breakdown {
		content.rows = append(content.rows, []any{e.Date, e.ProductName, e.OpeningStock, e.ClosingStock, e.Delivery, e.Consumption, e.Recorded})
	}
	return content, nil
}

func priceSheet(r *http.Request, service reporting.Reporter, window domain.Window, productID int64) (sheet, error) {
	report, err := service.PriceTrend(r.Context(), window, productID)
	if err != nil {
		return sheet{}, err
	}

	content := sheet{
		name:   "Price Trend",
		header: []string{"Date", "Product", "Price", "Sales Volume", "Recorded"},
	}
	for _, e := range report.Trend.Breakdown {
		content.rows = append(content.rows, []any{e.Date, e.ProductName, e.Price, e.Quantity, e.Recorded})
	}
	return content, nil
}

func salesSheet(report *reporting.DailySalesReport) sheet {
	content := sheet{
		name:   "Daily Sales",
		header: []string{"Date", "Revenue", "Quantity", "Price", "Recorded"},
	}
	for _, e := range report.Summary.Daily {
		content.rows = append(content.rows, []any{e.Date, e.Revenue, e.Quantity, e.Price, e.Recorded})
	}
	return content
}

func attendanceSheet(report *reporting.AttendanceReport) sheet {
	content := sheet{
		name:   "Attendance",
		header: []string{"Employee", "Present", "Absent", "Leave", "Half Day", "Recorded Days", "Attendance %", "Avg Worked Hours"},
	}
	for _, e := range report.Health.Employees {
		content.rows = append(content.rows, []any{
			e.EmployeeName, e.PresentDays, e.AbsentDays, e.LeaveDays, e.HalfDays,
			e.RecordedDays, e.AttendancePercentage, e.AvgWorkedHours,
		})
	}
	return content
}

func writeXLSX(content sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(content.name)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	if err := setRow(f, content.name, 1, content.header); err != nil {
		return nil, err
	}
	for r, values := range content.rows {
		if err := setRow(f, content.name, r+2, values); err != nil {
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(content.header))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(content.name, "A", lastCol, 16); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(content.name, "A1", lastCol+"1", style); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow[V any](f *excelize.File, sheetName string, row int, values []V) error {
	for c, v := range values {
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
