// platform/keymouse.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"strconv"
	"strings"
)

// State is the state of a key or mouse button.
type State int

const (
	StateRelease State = iota
	StatePress
	StateRepeat
)

func (s State) String() string {
	switch s {
	case StateRelease:
		return "Release"
	case StatePress:
		return "Press"
	case StateRepeat:
		return "Repeat"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	default:
		return "Button(" + strconv.Itoa(int(b)) + ")"
	}
}

// Modifier is a bitmask of the modifier keys that were held when a key
// or button event happened.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

func (m Modifier) String() string {
	var s []string
	for _, mn := range []struct {
		mod  Modifier
		name string
	}{{ModShift, "Shift"}, {ModCtrl, "Ctrl"}, {ModAlt, "Alt"}, {ModSuper, "Super"}} {
		if m.Has(mn.mod) {
			s = append(s, mn.name)
		}
	}
	if len(s) == 0 {
		return "None"
	}
	return strings.Join(s, "|")
}

// Key identifies a keyboard key. The numeric values follow the usual
// GLFW key codes, though backends always translate native codes through
// explicit tables rather than relying on that.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32

	Key0 Key = 48 + iota - 2
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

const (
	KeyA Key = 65 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	KeyEscape Key = 256 + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

const (
	KeyF1 Key = 290 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

const (
	KeyLeftShift Key = 340 + iota
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper
)

// CancelKey closes the window when released, unless the EventSink
// overrides Key.
const CancelKey = KeyEscape

var keyNames = map[Key]string{
	KeySpace: "Space", KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab",
	KeyBackspace: "Backspace", KeyInsert: "Insert", KeyDelete: "Delete",
	KeyRight: "Right", KeyLeft: "Left", KeyDown: "Down", KeyUp: "Up",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyHome: "Home", KeyEnd: "End",
	KeyLeftShift: "LeftShift", KeyLeftCtrl: "LeftCtrl", KeyLeftAlt: "LeftAlt",
	KeyLeftSuper: "LeftSuper", KeyRightShift: "RightShift", KeyRightCtrl: "RightCtrl",
	KeyRightAlt: "RightAlt", KeyRightSuper: "RightSuper",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k == KeyUnknown:
		return "Unknown"
	}
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// InputState tracks which keys and mouse buttons are held down, for
// backends whose native library can't be queried directly. The zero value
// is ready to use.
type InputState struct {
	keys    map[Key]struct{}
	buttons [ButtonCount]bool
}

func (s *InputState) SetKey(k Key, st State) {
	if s.keys == nil {
		s.keys = make(map[Key]struct{})
	}
	if st == StateRelease {
		delete(s.keys, k)
	} else {
		s.keys[k] = struct{}{}
	}
}

// Key returns StatePress if k is held and StateRelease otherwise; like
// the native libraries, it never reports StateRepeat.
func (s *InputState) Key(k Key) State {
	if _, ok := s.keys[k]; ok {
		return StatePress
	}
	return StateRelease
}

func (s *InputState) SetButton(b Button, st State) {
	if b >= 0 && b < ButtonCount {
		s.buttons[b] = st != StateRelease
	}
}

func (s *InputState) Button(b Button) State {
	if b >= 0 && b < ButtonCount && s.buttons[b] {
		return StatePress
	}
	return StateRelease
}
