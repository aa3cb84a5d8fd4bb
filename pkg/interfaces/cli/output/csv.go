package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vsinha/stocksim/pkg/application/dto"
	"github.com/vsinha/stocksim/pkg/domain/entities"
)

// generateCSVOutput writes the top consumer ranking, the report's final result table
func generateCSVOutput(w io.Writer, report *dto.SimulationReport) error {
	shares := make(map[entities.SupplyCode]string, len(report.Summary.Shares))
	for _, s := range report.Summary.Shares {
		shares[s.SupplyCode] = s.Percent.StringFixed(2)
	}

	rows := [][]string{{"rank", "supply_code", "total", "share_percent"}}
	for i, t := range report.TopConsumers.Merge {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			string(t.SupplyCode),
			strconv.FormatInt(int64(t.Total), 10),
			shares[t.SupplyCode],
		})
	}
	return writeCSV(w, rows)
}

func writeSuppliesCSV(w io.Writer, supplies []entities.Supply) error {
	rows := [][]string{{"code", "name", "expiry"}}
	for _, s := range supplies {
		rows = append(rows, []string{string(s.Code), s.Name, s.Expiry.Format(entities.DateLayout)})
	}
	return writeCSV(w, rows)
}

func writeEventsCSV(w io.Writer, events []entities.ConsumptionEvent) error {
	rows := [][]string{{"when", "supply_code", "quantity"}}
	for _, e := range events {
		rows = append(rows, []string{
			e.When.Format(entities.DateLayout),
			string(e.SupplyCode),
			strconv.FormatInt(int64(e.Quantity), 10),
		})
	}
	return writeCSV(w, rows)
}

func writeCSV(w io.Writer, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
