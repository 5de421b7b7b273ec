// platform/glfwwin/keys.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package glfwwin

import (
	"github.com/mmp/ezwin/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[glfw.Key]platform.Key{
	glfw.KeySpace:     platform.KeySpace,
	glfw.KeyEscape:    platform.KeyEscape,
	glfw.KeyEnter:     platform.KeyEnter,
	glfw.KeyKPEnter:   platform.KeyEnter,
	glfw.KeyTab:       platform.KeyTab,
	glfw.KeyBackspace: platform.KeyBackspace,
	glfw.KeyInsert:    platform.KeyInsert,
	glfw.KeyDelete:    platform.KeyDelete,
	glfw.KeyRight:     platform.KeyRight,
	glfw.KeyLeft:      platform.KeyLeft,
	glfw.KeyDown:      platform.KeyDown,
	glfw.KeyUp:        platform.KeyUp,
	glfw.KeyPageUp:    platform.KeyPageUp,
	glfw.KeyPageDown:  platform.KeyPageDown,
	glfw.KeyHome:      platform.KeyHome,
	glfw.KeyEnd:       platform.KeyEnd,

	glfw.KeyLeftShift:    platform.KeyLeftShift,
	glfw.KeyLeftControl:  platform.KeyLeftCtrl,
	glfw.KeyLeftAlt:      platform.KeyLeftAlt,
	glfw.KeyLeftSuper:    platform.KeyLeftSuper,
	glfw.KeyRightShift:   platform.KeyRightShift,
	glfw.KeyRightControl: platform.KeyRightCtrl,
	glfw.KeyRightAlt:     platform.KeyRightAlt,
	glfw.KeyRightSuper:   platform.KeyRightSuper,
}

// nativeKeys maps back from platform keys for GetKey queries.
var nativeKeys = make(map[platform.Key]glfw.Key)

func init() {
	for i := 0; i < 26; i++ {
		glfwKeys[glfw.KeyA+glfw.Key(i)] = platform.KeyA + platform.Key(i)
	}
	for i := 0; i < 10; i++ {
		glfwKeys[glfw.Key0+glfw.Key(i)] = platform.Key0 + platform.Key(i)
	}
	for i := 0; i < 12; i++ {
		glfwKeys[glfw.KeyF1+glfw.Key(i)] = platform.KeyF1 + platform.Key(i)
	}

	for gk, k := range glfwKeys {
		if gk != glfw.KeyKPEnter {
			nativeKeys[k] = gk
		}
	}
}

func keyFromGLFW(k glfw.Key) platform.Key {
	if pk, ok := glfwKeys[k]; ok {
		return pk
	}
	return platform.KeyUnknown
}

// stateFromAction translates a GLFW action; ok is false for values GLFW
// doesn't define.
func stateFromAction(a glfw.Action) (s platform.State, ok bool) {
	switch a {
	case glfw.Release:
		return platform.StateRelease, true
	case glfw.Press:
		return platform.StatePress, true
	case glfw.Repeat:
		return platform.StateRepeat, true
	default:
		return platform.StateRelease, false
	}
}

func modsFromGLFW(m glfw.ModifierKey) platform.Modifier {
	var mods platform.Modifier
	if m&glfw.ModShift != 0 {
		mods |= platform.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= platform.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		mods |= platform.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= platform.ModSuper
	}
	return mods
}

var glfwButtons = map[glfw.MouseButton]platform.Button{
	glfw.MouseButtonLeft:   platform.ButtonLeft,
	glfw.MouseButtonRight:  platform.ButtonRight,
	glfw.MouseButtonMiddle: platform.ButtonMiddle,
}

var nativeButtons = map[platform.Button]glfw.MouseButton{
	platform.ButtonLeft:   glfw.MouseButtonLeft,
	platform.ButtonRight:  glfw.MouseButtonRight,
	platform.ButtonMiddle: glfw.MouseButtonMiddle,
}

// translateUntranslatedKey maps keys GLFW reports by physical position to
// the letter or digit the keyboard layout puts there.
func translateUntranslatedKey(key glfw.Key, scancode int) glfw.Key {
	if key >= glfw.KeyKP0 && key <= glfw.KeyKPEqual {
		return key
	}
	name := glfw.GetKeyName(key, scancode)
	if len(name) == 1 {
		if name[0] >= '0' && name[0] <= '9' {
			return glfw.Key0 + glfw.Key(name[0]-'0')
		} else if name[0] >= 'A' && name[0] <= 'Z' {
			return glfw.KeyA + glfw.Key(name[0]-'A')
		} else if name[0] >= 'a' && name[0] <= 'z' {
			return glfw.KeyA + glfw.Key(name[0]-'a')
		}
	}
	return key
}
