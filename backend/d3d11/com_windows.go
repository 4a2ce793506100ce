// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package d3d11

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	iidIDXGIDevice1    = windows.GUID{Data1: 0x77db970f, Data2: 0x6276, Data3: 0x48ba, Data4: [8]byte{0xba, 0x28, 0x07, 0x01, 0x43, 0xb4, 0x39, 0x2c}}
	iidIDXGIAdapter1   = windows.GUID{Data1: 0x29038f61, Data2: 0x3839, Data3: 0x4626, Data4: [8]byte{0x91, 0xfd, 0x08, 0x68, 0x79, 0x01, 0x1a, 0x05}}
	iidIDXGIFactory1   = windows.GUID{Data1: 0x770aae78, Data2: 0xf26f, Data3: 0x4dba, Data4: [8]byte{0xa8, 0x29, 0x25, 0x3c, 0x83, 0xd1, 0xb3, 0x87}}
	iidIDXGIFactory2   = windows.GUID{Data1: 0x50c83a1c, Data2: 0xe072, Data3: 0x4c48, Data4: [8]byte{0x87, 0xb0, 0x36, 0x30, 0xfa, 0x36, 0xa6, 0xd0}}
	iidIDXGISwapChain  = windows.GUID{Data1: 0x310d36a0, Data2: 0xd2e7, Data3: 0x4c0a, Data4: [8]byte{0xaa, 0x04, 0x6a, 0x9d, 0x23, 0xb8, 0x88, 0x6a}}
	iidID3D11Device    = windows.GUID{Data1: 0xdb6f6ddb, Data2: 0xac77, Data3: 0x4e88, Data4: [8]byte{0x82, 0x53, 0x81, 0x9d, 0xf9, 0xbb, 0xf1, 0x40}}
	iidID3D11Texture2D = windows.GUID{Data1: 0x6f15aaf2, Data2: 0xd208, Data3: 0x4e89, Data4: [8]byte{0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}}
)

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// iUnknown is the header shared by every COM object.
type iUnknown struct {
	vtbl *iUnknownVtbl
}

func unknown[T any](p *T) *iUnknown {
	return (*iUnknown)(unsafe.Pointer(p))
}

func comRelease[T any](p *T) {
	if p == nil {
		return
	}
	u := unknown(p)
	syscall.SyscallN(u.vtbl.Release, uintptr(unsafe.Pointer(u)))
}

func comAddRef[T any](p *T) {
	u := unknown(p)
	syscall.SyscallN(u.vtbl.AddRef, uintptr(unsafe.Pointer(u)))
}

// queryInterface asks p for the interface iid. The result is owned by the
// caller.
func queryInterface[R, T any](p *T, iid *windows.GUID) (*R, error) {
	u := unknown(p)
	var out *R
	r, _, _ := syscall.SyscallN(u.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(u)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if err := hresult("QueryInterface", r); err != nil {
		return nil, err
	}
	return out, nil
}

type dxgiObjectVtbl struct {
	iUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

// getParent calls IDXGIObject::GetParent on any DXGI object.
func getParent[R, T any](p *T, iid *windows.GUID) (*R, error) {
	obj := (*struct{ vtbl *dxgiObjectVtbl })(unsafe.Pointer(p))
	var out *R
	r, _, _ := syscall.SyscallN(obj.vtbl.GetParent,
		uintptr(unsafe.Pointer(obj)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if err := hresult("GetParent", r); err != nil {
		return nil, err
	}
	return out, nil
}

type dxgiDevice1 struct {
	vtbl *struct {
		dxgiObjectVtbl
		GetAdapter             uintptr
		CreateSurface          uintptr
		QueryResourceResidency uintptr
		SetGPUThreadPriority   uintptr
		GetGPUThreadPriority   uintptr
		SetMaximumFrameLatency uintptr
		GetMaximumFrameLatency uintptr
	}
}

func (d *dxgiDevice1) SetMaximumFrameLatency(frames uint32) error {
	r, _, _ := syscall.SyscallN(d.vtbl.SetMaximumFrameLatency,
		uintptr(unsafe.Pointer(d)),
		uintptr(frames))
	return hresult("SetMaximumFrameLatency", r)
}

type dxgiAdapter1 struct {
	vtbl *struct {
		dxgiObjectVtbl
		EnumOutputs           uintptr
		GetDesc               uintptr
		CheckInterfaceSupport uintptr
		GetDesc1              uintptr
	}
}

func (a *dxgiAdapter1) GetDesc1() (adapterDesc1, error) {
	var desc adapterDesc1
	r, _, _ := syscall.SyscallN(a.vtbl.GetDesc1,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&desc)))
	return desc, hresult("GetDesc1", r)
}

type dxgiFactoryVtbl struct {
	dxgiObjectVtbl
	EnumAdapters          uintptr
	MakeWindowAssociation uintptr
	GetWindowAssociation  uintptr
	CreateSwapChain       uintptr
	CreateSoftwareAdapter uintptr
	EnumAdapters1         uintptr
	IsCurrent             uintptr
}

type dxgiFactory1 struct {
	vtbl *dxgiFactoryVtbl
}

func (f *dxgiFactory1) MakeWindowAssociation(window uintptr, flags uint32) error {
	r, _, _ := syscall.SyscallN(f.vtbl.MakeWindowAssociation,
		uintptr(unsafe.Pointer(f)),
		window,
		uintptr(flags))
	return hresult("MakeWindowAssociation", r)
}

func (f *dxgiFactory1) CreateSwapChain(dev *d3d11Device, desc *swapChainDesc) (*dxgiSwapChain, error) {
	var sc *dxgiSwapChain
	r, _, _ := syscall.SyscallN(f.vtbl.CreateSwapChain,
		uintptr(unsafe.Pointer(f)),
		uintptr(unsafe.Pointer(dev)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&sc)))
	if err := hresult("CreateSwapChain", r); err != nil {
		return nil, err
	}
	return sc, nil
}

type dxgiFactory2 struct {
	vtbl *struct {
		dxgiFactoryVtbl
		IsWindowedStereoEnabled       uintptr
		CreateSwapChainForHwnd        uintptr
		CreateSwapChainForCoreWindow  uintptr
		GetSharedResourceAdapterLuid  uintptr
		RegisterStereoStatusWindow    uintptr
		RegisterStereoStatusEvent     uintptr
		UnregisterStereoStatus        uintptr
		RegisterOcclusionStatusWindow uintptr
		RegisterOcclusionStatusEvent  uintptr
		UnregisterOcclusionStatus     uintptr
		CreateSwapChainForComposition uintptr
	}
}

// CreateSwapChainForHwnd returns the IDXGISwapChain interface of the new
// IDXGISwapChain1.
func (f *dxgiFactory2) CreateSwapChainForHwnd(dev *d3d11Device, window uintptr, desc *swapChainDesc1) (*dxgiSwapChain, error) {
	var sc1 *dxgiSwapChain
	r, _, _ := syscall.SyscallN(f.vtbl.CreateSwapChainForHwnd,
		uintptr(unsafe.Pointer(f)),
		uintptr(unsafe.Pointer(dev)),
		window,
		uintptr(unsafe.Pointer(desc)),
		0, // pFullscreenDesc
		0, // pRestrictToOutput
		uintptr(unsafe.Pointer(&sc1)))
	if err := hresult("CreateSwapChainForHwnd", r); err != nil {
		return nil, err
	}
	defer comRelease(sc1)
	return queryInterface[dxgiSwapChain](sc1, &iidIDXGISwapChain)
}

type dxgiSwapChain struct {
	vtbl *struct {
		dxgiObjectVtbl
		GetDevice           uintptr
		Present             uintptr
		GetBuffer           uintptr
		SetFullscreenState  uintptr
		GetFullscreenState  uintptr
		GetDesc             uintptr
		ResizeBuffers       uintptr
		ResizeTarget        uintptr
		GetContainingOutput uintptr
		GetFrameStatistics  uintptr
		GetLastPresentCount uintptr
	}
}

func (s *dxgiSwapChain) GetDesc() (swapChainDesc, error) {
	var desc swapChainDesc
	r, _, _ := syscall.SyscallN(s.vtbl.GetDesc,
		uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&desc)))
	return desc, hresult("GetDesc", r)
}

func (s *dxgiSwapChain) GetBuffer(i uint32) (*d3d11Texture2D, error) {
	var tex *d3d11Texture2D
	r, _, _ := syscall.SyscallN(s.vtbl.GetBuffer,
		uintptr(unsafe.Pointer(s)),
		uintptr(i),
		uintptr(unsafe.Pointer(&iidID3D11Texture2D)),
		uintptr(unsafe.Pointer(&tex)))
	if err := hresult("GetBuffer", r); err != nil {
		return nil, err
	}
	return tex, nil
}

func (s *dxgiSwapChain) GetDevice() (*d3d11Device, error) {
	var dev *d3d11Device
	r, _, _ := syscall.SyscallN(s.vtbl.GetDevice,
		uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(&iidID3D11Device)),
		uintptr(unsafe.Pointer(&dev)))
	if err := hresult("GetDevice", r); err != nil {
		return nil, err
	}
	return dev, nil
}

type d3d11Device struct {
	vtbl *struct {
		iUnknownVtbl
		CreateBuffer                         uintptr
		CreateTexture1D                      uintptr
		CreateTexture2D                      uintptr
		CreateTexture3D                      uintptr
		CreateShaderResourceView             uintptr
		CreateUnorderedAccessView            uintptr
		CreateRenderTargetView               uintptr
		CreateDepthStencilView               uintptr
		CreateInputLayout                    uintptr
		CreateVertexShader                   uintptr
		CreateGeometryShader                 uintptr
		CreateGeometryShaderWithStreamOutput uintptr
		CreatePixelShader                    uintptr
		CreateHullShader                     uintptr
		CreateDomainShader                   uintptr
		CreateComputeShader                  uintptr
		CreateClassLinkage                   uintptr
		CreateBlendState                     uintptr
		CreateDepthStencilState              uintptr
		CreateRasterizerState                uintptr
		CreateSamplerState                   uintptr
		CreateQuery                          uintptr
		CreatePredicate                      uintptr
		CreateCounter                        uintptr
		CreateDeferredContext                uintptr
		OpenSharedResource                   uintptr
		CheckFormatSupport                   uintptr
		CheckMultisampleQualityLevels        uintptr
		CheckCounterInfo                     uintptr
		CheckCounter                         uintptr
		CheckFeatureSupport                  uintptr
		GetPrivateData                       uintptr
		SetPrivateData                       uintptr
		SetPrivateDataInterface              uintptr
		GetFeatureLevel                      uintptr
		GetCreationFlags                     uintptr
		GetDeviceRemovedReason               uintptr
		GetImmediateContext                  uintptr
		SetExceptionMode                     uintptr
		GetExceptionMode                     uintptr
	}
}

func (d *d3d11Device) GetFeatureLevel() uint32 {
	r, _, _ := syscall.SyscallN(d.vtbl.GetFeatureLevel, uintptr(unsafe.Pointer(d)))
	return uint32(r)
}

func (d *d3d11Device) GetImmediateContext() *d3d11DeviceContext {
	var ctx *d3d11DeviceContext
	syscall.SyscallN(d.vtbl.GetImmediateContext,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&ctx)))
	return ctx
}

func (d *d3d11Device) CreateTexture2D(desc *texture2DDesc) (*d3d11Texture2D, error) {
	var tex *d3d11Texture2D
	r, _, _ := syscall.SyscallN(d.vtbl.CreateTexture2D,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		0, // pInitialData
		uintptr(unsafe.Pointer(&tex)))
	if err := hresult("CreateTexture2D", r); err != nil {
		return nil, err
	}
	return tex, nil
}

type d3d11Texture2D struct {
	vtbl *struct {
		iUnknownVtbl
		GetDevice               uintptr
		GetPrivateData          uintptr
		SetPrivateData          uintptr
		SetPrivateDataInterface uintptr
		GetType                 uintptr
		SetEvictionPriority     uintptr
		GetEvictionPriority     uintptr
		GetDesc                 uintptr
	}
}

func (t *d3d11Texture2D) GetDesc() texture2DDesc {
	var desc texture2DDesc
	syscall.SyscallN(t.vtbl.GetDesc,
		uintptr(unsafe.Pointer(t)),
		uintptr(unsafe.Pointer(&desc)))
	return desc
}

type d3d11DeviceContext struct {
	vtbl *struct {
		iUnknownVtbl
		GetDevice                                 uintptr
		GetPrivateData                            uintptr
		SetPrivateData                            uintptr
		SetPrivateDataInterface                   uintptr
		VSSetConstantBuffers                      uintptr
		PSSetShaderResources                      uintptr
		PSSetShader                               uintptr
		PSSetSamplers                             uintptr
		VSSetShader                               uintptr
		DrawIndexed                               uintptr
		Draw                                      uintptr
		Map                                       uintptr
		Unmap                                     uintptr
		PSSetConstantBuffers                      uintptr
		IASetInputLayout                          uintptr
		IASetVertexBuffers                        uintptr
		IASetIndexBuffer                          uintptr
		DrawIndexedInstanced                      uintptr
		DrawInstanced                             uintptr
		GSSetConstantBuffers                      uintptr
		GSSetShader                               uintptr
		IASetPrimitiveTopology                    uintptr
		VSSetShaderResources                      uintptr
		VSSetSamplers                             uintptr
		Begin                                     uintptr
		End                                       uintptr
		GetData                                   uintptr
		SetPredication                            uintptr
		GSSetShaderResources                      uintptr
		GSSetSamplers                             uintptr
		OMSetRenderTargets                        uintptr
		OMSetRenderTargetsAndUnorderedAccessViews uintptr
		OMSetBlendState                           uintptr
		OMSetDepthStencilState                    uintptr
		SOSetTargets                              uintptr
		DrawAuto                                  uintptr
		DrawIndexedInstancedIndirect              uintptr
		DrawInstancedIndirect                     uintptr
		Dispatch                                  uintptr
		DispatchIndirect                          uintptr
		RSSetState                                uintptr
		RSSetViewports                            uintptr
		RSSetScissorRects                         uintptr
		CopySubresourceRegion                     uintptr
		CopyResource                              uintptr
	}
}

func (c *d3d11DeviceContext) CopyResource(dst, src *d3d11Texture2D) {
	syscall.SyscallN(c.vtbl.CopyResource,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(unsafe.Pointer(src)))
}

func (c *d3d11DeviceContext) Map(res *d3d11Texture2D) (mappedSubresource, error) {
	var m mappedSubresource
	r, _, _ := syscall.SyscallN(c.vtbl.Map,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(res)),
		0, // Subresource
		mapRead,
		0, // MapFlags
		uintptr(unsafe.Pointer(&m)))
	return m, hresult("Map", r)
}

func (c *d3d11DeviceContext) Unmap(res *d3d11Texture2D) {
	syscall.SyscallN(c.vtbl.Unmap,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(res)),
		0)
}
