// cmd/ezdemo/dialogs.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/mmp/ezwin/log"

	"github.com/ncruces/zenity"
)

// ShowFatalErrorDialog reports an error that ezdemo can't recover from
// and exits. The dialog is skipped for the terminal backend, where it
// would pop up away from the user's attention.
func ShowFatalErrorDialog(lg *log.Logger, s string, args ...any) {
	if *backendName != "term" {
		msg := fmt.Sprintf(s, args...)
		if err := zenity.Error(msg, zenity.Title("ezdemo: fatal error"), zenity.ErrorIcon); err != nil {
			lg.Warnf("Unable to show error dialog: %v", err)
		}
	}
	lg.Fatalf(s, args...)
}
