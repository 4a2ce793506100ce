// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package swapchain negotiates a presentation surface for a negotiated
// device and captures the most recently presented frame.
//
// [Create] tries the flip presentation model first when the caller asks for
// it and the factory supports it, crossed with BGRA then RGBA backbuffers.
// When every format fails under flip model it demotes once to the blit
// model; failure there is terminal.
//
// [Capture] only works on flip-model surfaces, where the last presented
// buffer keeps its contents. It copies that buffer through a staging
// texture into a tightly packed [Image].
package swapchain
