// Package shared holds utilities used across the codebase that belong to no
// specific domain layer. Currently this is the testutil subpackage with the
// slog capture handler used by pipeline tests.
package shared
