package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/skalyan/odekit/internal/ode"
)

// WriteCSV streams a trajectory in the trajectory.csv layout: a time
// column, a step column for adaptive runs, and one column per state
// component. Floats are formatted to round-trip exactly.
func WriteCSV(w io.Writer, result *ode.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if len(result.States) == 0 {
		return nil
	}

	header := []string{"time"}
	if len(result.Steps) > 0 {
		header = append(header, "step")
	}
	for i := range result.States[0] {
		header = append(header, fmt.Sprintf("y%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range result.States {
		row := []string{strconv.FormatFloat(result.Times[i], 'g', 17, 64)}
		if len(result.Steps) > 0 {
			row = append(row, strconv.FormatFloat(result.Steps[i], 'g', 17, 64))
		}
		for _, val := range result.States[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 17, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
