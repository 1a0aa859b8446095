// This file is part of Chippy8.
//
// Chippy8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chippy8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chippy8.  If not, see <https://www.gnu.org/licenses/>.

// Package shaders embeds the GLSL sources used by the sdlimgui renderer.
package shaders

import (
	_ "embed"
)

// StraightVertexShader is the vertex shader used by every program. it simply
// projects the vertex and forwards UV and colour to the fragment shader.
//
//go:embed "straight.vert"
var StraightVertexShader []byte

// GUIShader is the fragment shader for imgui elements. the font atlas is an
// alpha8 texture held in the red channel.
//
//go:embed "gui.frag"
var GUIShader []byte

// ScreenShader is the fragment shader for the machine's display texture.
//
//go:embed "screen.frag"
var ScreenShader []byte
