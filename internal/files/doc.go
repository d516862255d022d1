// Package files provides small filesystem helpers shared by the pipeline and
// the CLI: default output path derivation, existence checks, and directory
// creation.
package files
