package dataset

import "errors"

// Dataset load error sentinels.
var (
	ErrMissingColumn = errors.New("required column missing")
	ErrInvalidRecord = errors.New("invalid launch record")
	ErrEmptyDataset  = errors.New("dataset contains no launch records")
)
