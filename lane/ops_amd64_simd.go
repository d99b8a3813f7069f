// Copyright 2025 go-linmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && goexperiment.simd && !nosimd

package lane

import "simd/archsimd"

// useSIMD is set by init in dispatch_amd64_simd.go.
var useSIMD bool

func addAVX(a, b F32x4) F32x4 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	var r F32x4
	va.Add(vb).StoreSlice(r[:])
	return r
}

func subAVX(a, b F32x4) F32x4 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	var r F32x4
	va.Sub(vb).StoreSlice(r[:])
	return r
}

func mulAVX(a, b F32x4) F32x4 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	var r F32x4
	va.Mul(vb).StoreSlice(r[:])
	return r
}

func divAVX(a, b F32x4) F32x4 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	var r F32x4
	va.Div(vb).StoreSlice(r[:])
	return r
}

func sqrtAVX(a F32x4) F32x4 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	var r F32x4
	va.Sqrt().StoreSlice(r[:])
	return r
}

func minAVX(a, b F32x4) F32x4 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	var r F32x4
	va.Min(vb).StoreSlice(r[:])
	return r
}

func maxAVX(a, b F32x4) F32x4 {
	va := archsimd.LoadFloat32x4Slice(a[:])
	vb := archsimd.LoadFloat32x4Slice(b[:])
	var r F32x4
	va.Max(vb).StoreSlice(r[:])
	return r
}
