// Package survey defines the network model the closure engine works
// on: Stations (named 3D positions), Shots (polar measurements between
// two stations) and Surveys (ordered shot collections sharing
// declination and convergence corrections), all held in a Network.
//
// Each Station keeps a back-reference list of its incident shots, so
// "which centerline shot connects A to B" resolves in O(deg(A)) via
// Network.ConnectingShot without any global scan.
//
// Shots are deliberately mutable: the closure and deviation packages
// rewrite Length/Azimuth/Clino in place when applying corrections.
// Everything else in the model is treated as read-only by the engine —
// it never creates or deletes Stations, Shots or Surveys.
//
// The model carries no locks. The engine is synchronous and
// single-threaded: a call only touches the shots reachable from its
// own path argument, so disjoint loops may be processed in parallel by
// the caller, while loops sharing shots must be serialized by the
// caller.
//
// Errors:
//
//	ErrEmptyStationName  - station name is the empty string.
//	ErrDuplicateStation  - station name already present in the network.
//	ErrUnknownStation    - referenced station does not exist.
//	ErrBadShotLength     - shot length is not strictly positive.
//	ErrNoCenterlineShot  - no centerline shot connects two stations.
package survey
