// Package diagnostic collects structured errors, warnings and notes about
// type catalogs: bad definitions, unresolved references with "did you mean"
// suggestions, and types that fail to resolve when forced.
package diagnostic
