// Package contextitems is the ContextItems export surface of the MegaScript
// host API. It re-exports every declaration of the canonical v1 package as
// aliases, so scripts written against either entry point see identical
// types.
//
// All files except this one are generated. Do not edit them; change the v1
// package and run:
//
//	go run ./cmd/surfacegen
package contextitems
