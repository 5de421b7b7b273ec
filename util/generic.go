// util/generic.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

func Select[T any](sel bool, a, b T) T {
	if sel {
		return a
	} else {
		return b
	}
}
