// Package output renders simulation reports and generated datasets.
package output

import (
	"fmt"
	"io"

	"github.com/vsinha/stocksim/pkg/application/dto"
	"github.com/vsinha/stocksim/pkg/domain/entities"
)

// Supported formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Limits caps how many rows the text renderer prints per section.
// json and csv always carry the full data.
type Limits struct {
	Events   int
	Pairs    int
	Matches  int
	Supplies int
}

// DefaultLimits mirrors the row counts of the classic console demo
var DefaultLimits = Limits{Events: 10, Pairs: 10, Matches: 5, Supplies: 10}

// Config holds configuration for output generation
type Config struct {
	Format string
	Limits Limits
}

// Generate writes report to w in the configured format
func Generate(w io.Writer, report *dto.SimulationReport, config Config) error {
	switch config.Format {
	case FormatText, "":
		return generateTextOutput(w, report, config.Limits)
	case FormatJSON:
		return writeJSON(w, report)
	case FormatCSV:
		return generateCSVOutput(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// Table selects which generated dataset WriteDataset renders in csv
type Table string

const (
	TableSupplies Table = "supplies"
	TableEvents   Table = "events"
)

// Dataset is the raw generator output
type Dataset struct {
	Supplies []entities.Supply          `json:"supplies"`
	Events   []entities.ConsumptionEvent `json:"events"`
}

// WriteDataset writes generated data to w. json writes both tables; csv and text write the selected one.
func WriteDataset(w io.Writer, data Dataset, format string, table Table) error {
	if table != TableSupplies && table != TableEvents {
		return fmt.Errorf("unsupported table: %s", table)
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, data)
	case FormatCSV:
		if table == TableSupplies {
			return writeSuppliesCSV(w, data.Supplies)
		}
		return writeEventsCSV(w, data.Events)
	case FormatText, "":
		if table == TableSupplies {
			return writeSuppliesText(w, data.Supplies, len(data.Supplies))
		}
		return writeEventsText(w, data.Events, len(data.Events))
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
