// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package importer binds the planes of hardware video surfaces to OpenGL
// rectangle textures without copying pixel data.
//
// An [Importer] allocates one texture per possible plane when it is
// created and rebinds them for every frame. It holds a reference to at most
// one frame: mapping a new frame releases the previous one first.
//
// The OpenGL and surface bindings are supplied by a platform backend
// through the [GL], [SurfaceBinder] and [Frame] interfaces; see
// backend/cgl for the macOS implementation.
package importer
