// Package dataprocessing implements the spreadsheet cleaning pipeline.
// It covers the complete data lifecycle from file ingestion through the
// fixed sequence of quality stages to report assembly.
//
// # Architecture
//
// The package has three layers:
//
// 1. Table model: a typed, value-semantics in-memory table (table.go)
// 2. Loader: Excel and CSV ingestion/output (loader.go)
// 3. Pipeline: the ordered cleaning stages (pipeline.go and stage files)
//
// # Data Flow
//
// The typical flow through this package:
//
//	Spreadsheet → LoadTable → Table → stages → cleaned Table → SaveTable
//	                                        ↘ QualityReport
//
// Stages run in a strict order: column-name normalization, deduplication,
// missing-value imputation, outlier capping, date standardization, text
// normalization, row completeness scoring, email validation, and finally
// report assembly.
//
// # Error Handling
//
// A failed load aborts the run. A failed save still returns the cleaned
// in-memory table alongside the error. Per-column conversion problems are
// logged as warnings and the column is left untouched; they never stop the
// pipeline.
package dataprocessing
