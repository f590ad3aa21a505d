// Package engine defines the fixed call contract between the solver
// session layer and a sparse direct-solver backend: the opaque session
// token, the enumerated configuration codes, the signed status taxonomy,
// and the Engine interface every backend implements.
//
// # Design principles
//
//  1. Isolation: backends live behind Engine; nothing above this package
//     knows whether the implementation is native code or pure Go.
//  2. Opaque handles: the Token is engine-owned scratch identity. It is
//     zero-initialized by the caller, mutated only by the engine, never
//     copied and never serialized.
//  3. Immediate decoding: every status returned by an engine call is
//     converted to a typed error at the call site via Status.Err.
//  4. Fixed width: index arrays and parameter slots are int32, matching
//     the 32-bit ABI of the engines this contract mirrors; the token and
//     floating parameters are full machine width.
//
// # Single instance
//
// The contract supports one factorization per session: MaxFct and
// InstanceID are constants passed on every phase call. Concurrent
// independent solves require one session (and one token) each.
package engine
