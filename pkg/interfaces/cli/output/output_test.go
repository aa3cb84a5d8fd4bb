package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/stocksim/pkg/application/dto"
	"github.com/vsinha/stocksim/pkg/application/services/simulation"
	testhelpers "github.com/vsinha/stocksim/pkg/infrastructure/testing"
)

func buildReport(t *testing.T) *dto.SimulationReport {
	t.Helper()
	report, err := simulation.NewOrchestrator(nil).Run(context.Background(), simulation.Params{
		Supplies:   25,
		Days:       14,
		MeanEvents: 8,
		MaxQty:     15,
		Seed:       42,
		KLast:      5,
		StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return report
}

func TestGenerate_Text(t *testing.T) {
	report := buildReport(t)
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, report, Config{Format: FormatText}))
	out := buf.String()

	for _, section := range []string{
		"GENERATED DATA",
		"QUEUE (FIFO) -> CHRONOLOGICAL LEDGER",
		"STACK (LIFO): MOST RECENT EVENTS",
		"LINEAR SEARCH",
		"BINARY SEARCH",
		"TOP SUPPLIES BY CONSUMPTION",
		"SUPPLIES BY NEAREST EXPIRY (FEFO)",
		"SUMMARY",
		"COMPLEXITY",
	} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, report.RunID.String())
	assert.Contains(t, out, "Events for supply INS-001 found")
	assert.Contains(t, out, "merge and quick sort agree on key order")
	assert.Contains(t, out, "... (+", "ledger longer than the limit must be truncated")
	assert.Contains(t, out, report.Recent[0].String())
}

func TestGenerate_TextLimits(t *testing.T) {
	report := buildReport(t)
	var buf bytes.Buffer

	limits := Limits{Events: 1, Pairs: 1, Matches: 1, Supplies: 1}
	require.NoError(t, Generate(&buf, report, Config{Format: FormatText, Limits: limits}))

	assert.Contains(t, buf.String(), report.Ledger[0].String())
	assert.Contains(t, buf.String(), "(+24 supplies)")
}

func TestGenerate_JSON(t *testing.T) {
	report := buildReport(t)
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, report, Config{Format: FormatJSON}))

	var decoded struct {
		RunID      string `json:"run_id"`
		Ledger     []any  `json:"ledger"`
		TargetCode string `json:"target_code"`
		Summary    struct {
			Events          int    `json:"events"`
			MeanQtyPerEvent string `json:"mean_qty_per_event"`
		} `json:"summary"`
		TopConsumers struct {
			KeysAgree bool `json:"keys_agree"`
		} `json:"top_consumers"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, report.RunID.String(), decoded.RunID)
	assert.Len(t, decoded.Ledger, len(report.Ledger))
	assert.Equal(t, "INS-001", decoded.TargetCode)
	assert.Equal(t, len(report.Ledger), decoded.Summary.Events)
	assert.Equal(t, report.Summary.MeanQtyPerEvent.String(), decoded.Summary.MeanQtyPerEvent)
	assert.True(t, decoded.TopConsumers.KeysAgree)
}

func TestGenerate_CSV(t *testing.T) {
	report := buildReport(t)
	var buf bytes.Buffer

	require.NoError(t, Generate(&buf, report, Config{Format: FormatCSV}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(report.Totals)+1)
	assert.Equal(t, []string{"rank", "supply_code", "total", "share_percent"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, string(report.TopConsumers.Merge[0].SupplyCode), rows[1][1])
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	err := Generate(&bytes.Buffer{}, buildReport(t), Config{Format: "xml"})
	assert.EqualError(t, err, "unsupported output format: xml")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerate_WriteErrors(t *testing.T) {
	report := buildReport(t)

	for _, format := range []string{FormatText, FormatJSON, FormatCSV} {
		t.Run(format, func(t *testing.T) {
			err := Generate(failingWriter{}, report, Config{Format: format})
			assert.ErrorContains(t, err, "disk full")
		})
	}
}

func TestWriteDataset(t *testing.T) {
	data := Dataset{
		Supplies: testhelpers.BuildSupplies(30, 90),
		Events:   testhelpers.BuildLedger(),
	}

	t.Run("events csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDataset(&buf, data, FormatCSV, TableEvents))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, len(data.Events)+1)
		assert.Equal(t, []string{"2025-03-01", "INS-002", "4"}, rows[1])
	})

	t.Run("supplies csv", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDataset(&buf, data, FormatCSV, TableSupplies))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"code", "name", "expiry"},
			{"INS-001", "Insumo 001", "2025-03-31"},
			{"INS-002", "Insumo 002", "2025-05-30"},
		}, rows)
	})

	t.Run("json carries both tables", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDataset(&buf, data, FormatJSON, TableEvents))

		var decoded Dataset
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, data, decoded)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDataset(&buf, data, FormatText, TableEvents))
		assert.Equal(t, len(data.Events), strings.Count(buf.String(), "\n"))
	})

	t.Run("unknown table", func(t *testing.T) {
		err := WriteDataset(&bytes.Buffer{}, data, FormatCSV, Table("orders"))
		assert.EqualError(t, err, "unsupported table: orders")
	})
}
