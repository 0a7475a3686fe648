// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the
// application, facilitating consistent and DRY testing across the codebase.
// Instead of defining inline mocks in individual test files, these standardized
// mock implementations can be reused.
//
// Each mock exposes function fields (CreateFn, GetByIDFn, ...) for custom
// behavior plus a small in-memory default implementation backed by maps, so
// simple tests need no setup beyond the constructor.
package mocks
