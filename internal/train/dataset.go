package train

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Dataset pairs input patterns with their targets.
type Dataset struct {
	Inputs  [][]float64
	Targets [][]float64
}

// Len returns the number of patterns.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// LoadCSV loads data from a CSV file.
// targetCols specifies the indices of columns to be used as targets, in
// order; every other column is an input. hasHeader skips the first line.
func LoadCSV(filename string, targetCols []int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, fmt.Errorf("%w: csv file has no data rows", ErrEmptyDataset)
	}

	numCols := len(records[0])
	isTarget := make(map[int]bool, len(targetCols))
	for _, col := range targetCols {
		if col < 0 || col >= numCols {
			return nil, fmt.Errorf("target column %d out of range [0, %d)", col, numCols)
		}
		isTarget[col] = true
	}

	d := &Dataset{
		Inputs:  make([][]float64, 0, len(records)-startRow),
		Targets: make([][]float64, 0, len(records)-startRow),
	}
	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, fmt.Errorf("inconsistent number of columns at row %d", i)
		}

		row := make([]float64, numCols)
		for j, s := range record {
			if row[j], err = strconv.ParseFloat(s, 64); err != nil {
				return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
		}

		input := make([]float64, 0, numCols-len(isTarget))
		for j, v := range row {
			if !isTarget[j] {
				input = append(input, v)
			}
		}
		target := make([]float64, len(targetCols))
		for k, col := range targetCols {
			target[k] = row[col]
		}
		d.Inputs = append(d.Inputs, input)
		d.Targets = append(d.Targets, target)
	}
	return d, nil
}

// Normalize rescales every input column to [0, 1] in place. Constant columns
// become 0.
func (d *Dataset) Normalize() {
	if len(d.Inputs) == 0 {
		return
	}

	column := make([]float64, len(d.Inputs))
	for j := range d.Inputs[0] {
		for i, input := range d.Inputs {
			column[i] = input[j]
		}
		lo, hi := floats.Min(column), floats.Max(column)
		for _, input := range d.Inputs {
			if hi != lo {
				input[j] = (input[j] - lo) / (hi - lo)
			} else {
				input[j] = 0
			}
		}
	}
}

// Split splits the dataset at ratio (0 to 1) into a training and a test set.
// Both share the underlying rows.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	if ratio <= 0 {
		return &Dataset{}, d
	}
	if ratio >= 1 {
		return d, &Dataset{}
	}

	at := int(float64(len(d.Inputs)) * ratio)
	train := &Dataset{Inputs: d.Inputs[:at], Targets: d.Targets[:at]}
	test := &Dataset{Inputs: d.Inputs[at:], Targets: d.Targets[at:]}
	return train, test
}
