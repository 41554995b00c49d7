package train

import "errors"

var (
	ErrEmptyDataset    = errors.New("empty dataset")
	ErrDatasetMismatch = errors.New("inputs and targets differ in length")
)
