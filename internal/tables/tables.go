// Package tables encodes row slices as snappy-compressed parquet files.
package tables

import (
	"bytes"
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/domain/records"
)

// Encode writes rows as a single parquet file. Column names and nullability come
// from the row type's parquet struct tags.
func Encode[T any](rows []T) ([]byte, error) {
	var buf bytes.Buffer
	w := parquet.NewGenericWriter[T](&buf, parquet.Compression(&parquet.Snappy))
	if _, err := w.Write(rows); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("writing parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing parquet writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reads every row of a parquet file produced by Encode. T must be a flat
// struct: nulls in embedded struct fields come back as zero values.
func Decode[T any](data []byte) ([]T, error) {
	rows, err := parquet.Read[T](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reading parquet rows: %w", err)
	}
	return rows, nil
}

// DecodeShots reads a shots table.
func DecodeShots(data []byte) ([]records.Shot, error) {
	cols, err := Decode[records.ShotColumns](data)
	if err != nil {
		return nil, err
	}
	shots := make([]records.Shot, len(cols))
	for i, c := range cols {
		shots[i] = c.Shot()
	}
	return shots, nil
}

// DecodeScoredShots reads the scored shots table.
func DecodeScoredShots(data []byte) ([]records.ShotXG, error) {
	cols, err := Decode[records.ShotXGColumns](data)
	if err != nil {
		return nil, err
	}
	scored := make([]records.ShotXG, len(cols))
	for i, c := range cols {
		scored[i] = c.ShotXG()
	}
	return scored, nil
}
