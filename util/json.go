// util/json.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"encoding/json"
	"errors"
	"fmt"
)

// lineColumn returns the 1-based line and column of the byte at offset.
func lineColumn(b []byte, offset int64) (line, col int) {
	line, col = 1, 1
	for i := 0; i < int(offset) && i < len(b); i++ {
		if b[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// UnmarshalJSONBytes is json.Unmarshal, but syntax and type errors are
// reported with the line and column in b where they occurred.
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	err := json.Unmarshal(b, out)
	if err == nil {
		return nil
	}

	var serr *json.SyntaxError
	var terr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &serr):
		line, col := lineColumn(b, serr.Offset)
		return fmt.Errorf("line %d, column %d: %w", line, col, err)
	case errors.As(err, &terr):
		line, col := lineColumn(b, terr.Offset)
		return fmt.Errorf("line %d, column %d: %s value invalid for %s (%s): %w", line, col,
			terr.Value, terr.Field, terr.Type, err)
	default:
		return err
	}
}
