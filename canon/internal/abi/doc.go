// Package abi provides internal utilities for canonical ABI string and char
// handling.
//
// # Contents
//
//   - coerce.go: Go values accepted for a WIT char
//   - count.go: flat value counts of the supported WIT types
//   - helpers.go: checked arithmetic, alignment and type names
//
// This package is internal to canon.
package abi
