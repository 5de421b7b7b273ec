// platform/config.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

// ChannelBits gives the number of bits requested for each framebuffer
// channel.
type ChannelBits struct {
	R, G, B, A     uint32
	Depth, Stencil uint32
}

type ClientAPI int

const (
	// ClientAPIOpenGL creates an OpenGL context along with the window and
	// makes it current.
	ClientAPIOpenGL ClientAPI = iota
	// ClientAPINone creates the window without any client API context,
	// e.g. for rendering through a Vulkan surface.
	ClientAPINone
)

func (c ClientAPI) String() string {
	if c == ClientAPINone {
		return "None"
	}
	return "OpenGL"
}

// OriginCorner determines which corner of the window is (0,0) for the
// cursor positions the Window reports.
type OriginCorner int

const (
	OriginTopLeft OriginCorner = iota
	OriginBottomLeft
)

func (o OriginCorner) String() string {
	if o == OriginBottomLeft {
		return "BottomLeft"
	}
	return "TopLeft"
}

// Config holds everything that is used to create a window. Most of it
// becomes creation hints for the native library; Size, Title and
// Visible can also be changed on a live window.
type Config struct {
	Size           [2]int
	Title          string
	Visible        bool
	Samples        int
	DoubleBuffered bool
	Channels       ChannelBits
	ClientAPI      ClientAPI
	Resizable      bool

	// Hints are passed verbatim to the backend before the window is
	// created, after the hints derived from the fields above.
	Hints map[int]int `json:",omitempty" msgpack:",omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Size:           [2]int{1280, 720},
		Title:          "ezwin",
		Visible:        true,
		Samples:        0,
		DoubleBuffered: true,
		Channels:       ChannelBits{R: 8, G: 8, B: 8, A: 8, Depth: 32, Stencil: 16},
		ClientAPI:      ClientAPIOpenGL,
		Resizable:      true,
	}
}

func sanitizeSize(size [2]int) [2]int {
	return [2]int{max(size[0], 0), max(size[1], 0)}
}

func (c *Config) sanitize() {
	c.Size = sanitizeSize(c.Size)
	c.Samples = max(c.Samples, 0)
}
