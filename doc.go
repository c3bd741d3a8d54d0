// Package pixmath provides per-pixel image arithmetic and affine
// transformation matrix builders for the GoGPU ecosystem.
//
// # Overview
//
// pixmath has two independent halves:
//
//   - Image arithmetic: elementwise combinators (Add, Sub, Mul, Div,
//     Invert) over float-RGBA images, each with an allocating form and
//     an in-place form writing into a caller-supplied target.
//   - Affine builders: pure constructors of 4x4 (and 2x2)
//     transformation matrices from semantic parameters — rotations,
//     translations, scales, shears, projections, reflections, view and
//     projection matrices, Euler-angle conversion.
//
// # Quick Start
//
//	import "github.com/gogpu/pixmath"
//
//	// Combine two images.
//	sum := pixmath.Add(a, b, 1)
//
//	// Build a view-projection matrix.
//	view := pixmath.LookAt(eye, center, up)
//	proj := pixmath.Perspective(45, 16.0/9, 1, 100)
//	vp := proj.Mul(view)
//
// # Conventions
//
// Matrices are stored row-major: element (r, c) lives at flat index
// r*4+c (r*2+c for Mat2). Vectors transform as columns, v' = M * v, so
// composed transforms apply right to left. The coordinate system is
// right-handed with the camera looking down -Z; Perspective, Ortho and
// Frustum produce OpenGL-style clip space with depth in [-1, 1].
//
// Angles are in radians except Perspective's field of view, which takes
// degrees.
//
// # Errors
//
// All functions are pure and deterministic. Contract violations,
// such as combining images of different sizes, passing a non-unit axis
// where a unit axis is required, or an out-of-range Axis value, panic.
// Numeric degeneracies (division by zero, gimbal lock, parallel
// look-at vectors) follow IEEE semantics or documented fallback
// branches; they never panic.
package pixmath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
