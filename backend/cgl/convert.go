// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cgl

import (
	"fmt"
	"image"
)

// bgraToRGBA copies packed BGRA rows into a new RGBA image.
func bgraToRGBA(src []byte, stride, width, height int) (*image.RGBA, error) {
	if err := checkPlane("BGRA", len(src), stride, width*4, height); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		s := src[y*stride : y*stride+width*4]
		d := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < len(s); x += 4 {
			d[x+0] = s[x+2]
			d[x+1] = s[x+1]
			d[x+2] = s[x+0]
			d[x+3] = s[x+3]
		}
	}
	return img, nil
}

// nv12ToYCbCr de-interleaves a biplanar 4:2:0 frame. Video-range samples
// are expanded to full range when videoRange is set, since image.YCbCr
// converts with full-range coefficients.
func nv12ToYCbCr(luma []byte, lumaStride int, chroma []byte, chromaStride int, width, height int, videoRange bool) (*image.YCbCr, error) {
	cw, ch := (width+1)/2, (height+1)/2
	if err := checkPlane("luma", len(luma), lumaStride, width, height); err != nil {
		return nil, err
	}
	if err := checkPlane("chroma", len(chroma), chromaStride, cw*2, ch); err != nil {
		return nil, err
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio420)
	for y := range height {
		s := luma[y*lumaStride : y*lumaStride+width]
		d := img.Y[y*img.YStride : y*img.YStride+width]
		if !videoRange {
			copy(d, s)
			continue
		}
		for x, v := range s {
			d[x] = expandLuma(v)
		}
	}
	for y := range ch {
		s := chroma[y*chromaStride : y*chromaStride+cw*2]
		cb := img.Cb[y*img.CStride : y*img.CStride+cw]
		cr := img.Cr[y*img.CStride : y*img.CStride+cw]
		for x := range cw {
			u, v := s[2*x], s[2*x+1]
			if videoRange {
				u, v = expandChroma(u), expandChroma(v)
			}
			cb[x], cr[x] = u, v
		}
	}
	return img, nil
}

// i420ToYCbCr copies a three-plane video-range 4:2:0 frame.
func i420ToYCbCr(planes [3][]byte, strides [3]int, width, height int) (*image.YCbCr, error) {
	cw, ch := (width+1)/2, (height+1)/2
	if err := checkPlane("luma", len(planes[0]), strides[0], width, height); err != nil {
		return nil, err
	}
	if err := checkPlane("Cb", len(planes[1]), strides[1], cw, ch); err != nil {
		return nil, err
	}
	if err := checkPlane("Cr", len(planes[2]), strides[2], cw, ch); err != nil {
		return nil, err
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio420)
	for y := range height {
		s := planes[0][y*strides[0] : y*strides[0]+width]
		d := img.Y[y*img.YStride : y*img.YStride+width]
		for x, v := range s {
			d[x] = expandLuma(v)
		}
	}
	for y := range ch {
		cb := planes[1][y*strides[1] : y*strides[1]+cw]
		cr := planes[2][y*strides[2] : y*strides[2]+cw]
		for x := range cw {
			img.Cb[y*img.CStride+x] = expandChroma(cb[x])
			img.Cr[y*img.CStride+x] = expandChroma(cr[x])
		}
	}
	return img, nil
}

// uyvyToYCbCr unpacks a video-range 4:2:2 frame stored as Cb Y0 Cr Y1.
func uyvyToYCbCr(src []byte, stride, width, height int) (*image.YCbCr, error) {
	cw := (width + 1) / 2
	if err := checkPlane("UYVY", len(src), stride, cw*4, height); err != nil {
		return nil, err
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio422)
	for y := range height {
		s := src[y*stride : y*stride+cw*4]
		for x := range cw {
			q := s[4*x : 4*x+4]
			img.Cb[y*img.CStride+x] = expandChroma(q[0])
			img.Cr[y*img.CStride+x] = expandChroma(q[2])
			img.Y[y*img.YStride+2*x] = expandLuma(q[1])
			if 2*x+1 < width {
				img.Y[y*img.YStride+2*x+1] = expandLuma(q[3])
			}
		}
	}
	return img, nil
}

// p010ToYCbCr narrows a video-range biplanar 4:2:0 frame of little-endian
// 16-bit samples to 8 bits by keeping the high byte of each sample.
func p010ToYCbCr(luma []byte, lumaStride int, chroma []byte, chromaStride int, width, height int) (*image.YCbCr, error) {
	cw, ch := (width+1)/2, (height+1)/2
	if err := checkPlane("luma", len(luma), lumaStride, width*2, height); err != nil {
		return nil, err
	}
	if err := checkPlane("chroma", len(chroma), chromaStride, cw*4, ch); err != nil {
		return nil, err
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio420)
	for y := range height {
		s := luma[y*lumaStride : y*lumaStride+width*2]
		d := img.Y[y*img.YStride : y*img.YStride+width]
		for x := range d {
			d[x] = expandLuma(s[2*x+1])
		}
	}
	for y := range ch {
		s := chroma[y*chromaStride : y*chromaStride+cw*4]
		for x := range cw {
			img.Cb[y*img.CStride+x] = expandChroma(s[4*x+1])
			img.Cr[y*img.CStride+x] = expandChroma(s[4*x+3])
		}
	}
	return img, nil
}

func checkPlane(name string, n, stride, rowBytes, rows int) error {
	if stride < rowBytes {
		return fmt.Errorf("cgl: %s stride %d shorter than row of %d bytes", name, stride, rowBytes)
	}
	if rows > 0 && n < stride*(rows-1)+rowBytes {
		return fmt.Errorf("cgl: %s plane holds %d bytes, need %d", name, n, stride*(rows-1)+rowBytes)
	}
	return nil
}

// expandLuma maps 16..235 to 0..255.
func expandLuma(v byte) byte {
	return clamp((int(v) - 16) * 255 / 219)
}

// expandChroma maps 16..240 to 0..255, rounding to nearest.
func expandChroma(v byte) byte {
	return clamp(((int(v)-16)*255 + 112) / 224)
}

func clamp(v int) byte {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return byte(v)
	}
}
