// Package loopclose is an in-memory engine for closing cave-survey
// traverses — from polar/Cartesian primitives to Bowditch loop
// adjustment and per-shot deviation analysis.
//
// 🚀 What is loopclose?
//
//	A small, deterministic, zero-I/O library that brings together:
//		• Geometry primitives: polar (length, azimuth, clino) ↔ 3D vectors
//		• Survey model: stations, shots and surveys with incident-shot lookup
//		• Closure calculator: vector misclosure around any closed walk
//		• Bowditch propagation: length-proportional error redistribution
//		• Deviation analysis: flag & correct shots that disagree with
//		  already-adjusted station positions
//
// ✨ Why choose loopclose?
//
//   - Predictable – every call is a pure function over its arguments,
//     apart from the explicitly documented in-place shot corrections
//   - Rock-solid guarantees – validate fully up front, then compute
//     deterministically; sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Composable – cycle discovery is injected via closure.LoopSource,
//     so any graph library can feed loops into the engine
//
// Under the hood, everything is organized under five subpackages:
//
//	geom/      — Vector3 & Polar value types and conversions
//	survey/    — Station, Shot, Survey and the Network model
//	closure/   — misclosure calculation & Bowditch propagation
//	deviation/ — per-shot deviation detection and correction
//	builder/   — deterministic synthetic traverses for tests & demos
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	a four-leg traverse A→B→C→D→A; if the four measured legs do not sum
//	to zero, the loop carries a closure error worth distributing.
//
// Dive into examples/ for full scenarios, and each package's doc.go for
// contracts, error taxonomies and complexity notes.
package loopclose
