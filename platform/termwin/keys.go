// platform/termwin/keys.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package termwin

import (
	"github.com/mmp/ezwin/platform"

	"github.com/gdamore/tcell/v2"
)

var tcellKeys = map[tcell.Key]platform.Key{
	tcell.KeyEscape:     platform.KeyEscape,
	tcell.KeyEnter:      platform.KeyEnter,
	tcell.KeyTab:        platform.KeyTab,
	tcell.KeyBackspace:  platform.KeyBackspace,
	tcell.KeyBackspace2: platform.KeyBackspace,
	tcell.KeyInsert:     platform.KeyInsert,
	tcell.KeyDelete:     platform.KeyDelete,
	tcell.KeyRight:      platform.KeyRight,
	tcell.KeyLeft:       platform.KeyLeft,
	tcell.KeyDown:       platform.KeyDown,
	tcell.KeyUp:         platform.KeyUp,
	tcell.KeyPgUp:       platform.KeyPageUp,
	tcell.KeyPgDn:       platform.KeyPageDown,
	tcell.KeyHome:       platform.KeyHome,
	tcell.KeyEnd:        platform.KeyEnd,
}

func init() {
	for i := 0; i < 12; i++ {
		tcellKeys[tcell.KeyF1+tcell.Key(i)] = platform.KeyF1 + platform.Key(i)
	}
}

func modsFromTcell(m tcell.ModMask) platform.Modifier {
	var mods platform.Modifier
	if m&tcell.ModShift != 0 {
		mods |= platform.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= platform.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= platform.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= platform.ModSuper
	}
	return mods
}

// keyFromTcell translates a key event; keys that have no platform.Key
// are returned as KeyUnknown.
func keyFromTcell(ev *tcell.EventKey) (platform.Key, platform.Modifier) {
	mods := modsFromTcell(ev.Modifiers())

	if k, ok := tcellKeys[ev.Key()]; ok {
		return k, mods
	}

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= 'a' && r <= 'z':
			return platform.KeyA + platform.Key(r-'a'), mods
		case r >= 'A' && r <= 'Z':
			return platform.KeyA + platform.Key(r-'A'), mods | platform.ModShift
		case r >= '0' && r <= '9':
			return platform.Key0 + platform.Key(r-'0'), mods
		case r == ' ':
			return platform.KeySpace, mods
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return platform.KeyA + platform.Key(k-tcell.KeyCtrlA), mods | platform.ModCtrl
	}
	return platform.KeyUnknown, mods
}
