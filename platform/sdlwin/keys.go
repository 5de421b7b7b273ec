// platform/sdlwin/keys.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package sdlwin

import (
	"github.com/mmp/ezwin/platform"

	"github.com/veandco/go-sdl2/sdl"
)

var sdlScancodes = map[sdl.Scancode]platform.Key{
	sdl.SCANCODE_SPACE:     platform.KeySpace,
	sdl.SCANCODE_ESCAPE:    platform.KeyEscape,
	sdl.SCANCODE_RETURN:    platform.KeyEnter,
	sdl.SCANCODE_KP_ENTER:  platform.KeyEnter,
	sdl.SCANCODE_TAB:       platform.KeyTab,
	sdl.SCANCODE_BACKSPACE: platform.KeyBackspace,
	sdl.SCANCODE_INSERT:    platform.KeyInsert,
	sdl.SCANCODE_DELETE:    platform.KeyDelete,
	sdl.SCANCODE_RIGHT:     platform.KeyRight,
	sdl.SCANCODE_LEFT:      platform.KeyLeft,
	sdl.SCANCODE_DOWN:      platform.KeyDown,
	sdl.SCANCODE_UP:        platform.KeyUp,
	sdl.SCANCODE_PAGEUP:    platform.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN:  platform.KeyPageDown,
	sdl.SCANCODE_HOME:      platform.KeyHome,
	sdl.SCANCODE_END:       platform.KeyEnd,
	sdl.SCANCODE_0:         platform.Key0,

	sdl.SCANCODE_LSHIFT: platform.KeyLeftShift,
	sdl.SCANCODE_LCTRL:  platform.KeyLeftCtrl,
	sdl.SCANCODE_LALT:   platform.KeyLeftAlt,
	sdl.SCANCODE_LGUI:   platform.KeyLeftSuper,
	sdl.SCANCODE_RSHIFT: platform.KeyRightShift,
	sdl.SCANCODE_RCTRL:  platform.KeyRightCtrl,
	sdl.SCANCODE_RALT:   platform.KeyRightAlt,
	sdl.SCANCODE_RGUI:   platform.KeyRightSuper,
}

var nativeScancodes = make(map[platform.Key]sdl.Scancode)

func init() {
	// SDL orders its scancodes A-Z, then 1-9 followed by 0.
	for i := 0; i < 26; i++ {
		sdlScancodes[sdl.SCANCODE_A+sdl.Scancode(i)] = platform.KeyA + platform.Key(i)
	}
	for i := 0; i < 9; i++ {
		sdlScancodes[sdl.SCANCODE_1+sdl.Scancode(i)] = platform.Key1 + platform.Key(i)
	}
	for i := 0; i < 12; i++ {
		sdlScancodes[sdl.SCANCODE_F1+sdl.Scancode(i)] = platform.KeyF1 + platform.Key(i)
	}

	for sc, k := range sdlScancodes {
		if sc != sdl.SCANCODE_KP_ENTER {
			nativeScancodes[k] = sc
		}
	}
}

func keyFromScancode(sc sdl.Scancode) platform.Key {
	if k, ok := sdlScancodes[sc]; ok {
		return k
	}
	return platform.KeyUnknown
}

func modsFromSDL(m sdl.Keymod) platform.Modifier {
	var mods platform.Modifier
	if m&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0 {
		mods |= platform.ModShift
	}
	if m&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0 {
		mods |= platform.ModCtrl
	}
	if m&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0 {
		mods |= platform.ModAlt
	}
	if m&(sdl.KMOD_LGUI|sdl.KMOD_RGUI) != 0 {
		mods |= platform.ModSuper
	}
	return mods
}

func buttonFromSDL(b uint8) (platform.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return platform.ButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return platform.ButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return platform.ButtonMiddle, true
	default:
		return 0, false
	}
}
