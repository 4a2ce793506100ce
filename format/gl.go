// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import "fmt"

// GLenum is an OpenGL enumerant.
type GLenum uint32

// OpenGL enumerants used by the import table.
const (
	GLRed    GLenum = 0x1903
	GLRG     GLenum = 0x8227
	GLRGB    GLenum = 0x1907
	GLRGBA   GLenum = 0x1908
	GLBGRA   GLenum = 0x80E1
	GLR16    GLenum = 0x822A
	GLRG16   GLenum = 0x822C
	GLRGB422 GLenum = 0x8A1F // GL_RGB_422_APPLE

	GLUnsignedByte         GLenum = 0x1401
	GLUnsignedShort        GLenum = 0x1403
	GLUnsignedInt8888Rev   GLenum = 0x8367
	GLUnsignedShort88Apple GLenum = 0x85BA

	GLTexture2D        GLenum = 0x0DE1
	GLTextureRectangle GLenum = 0x84F5
)

var glNames = map[GLenum]string{
	GLRed:                  "GL_RED",
	GLRG:                   "GL_RG",
	GLRGB:                  "GL_RGB",
	GLRGBA:                 "GL_RGBA",
	GLBGRA:                 "GL_BGRA",
	GLR16:                  "GL_R16",
	GLRG16:                 "GL_RG16",
	GLRGB422:               "GL_RGB_422_APPLE",
	GLUnsignedByte:         "GL_UNSIGNED_BYTE",
	GLUnsignedShort:        "GL_UNSIGNED_SHORT",
	GLUnsignedInt8888Rev:   "GL_UNSIGNED_INT_8_8_8_8_REV",
	GLUnsignedShort88Apple: "GL_UNSIGNED_SHORT_8_8_APPLE",
	GLTexture2D:            "GL_TEXTURE_2D",
	GLTextureRectangle:     "GL_TEXTURE_RECTANGLE",
}

func (e GLenum) String() string {
	if name, ok := glNames[e]; ok {
		return name
	}
	return fmt.Sprintf("GLenum(0x%04X)", uint32(e))
}
