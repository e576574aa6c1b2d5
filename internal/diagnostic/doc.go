// Package diagnostic collects coded, path-scoped messages produced while
// populating object graphs and validating operation scripts.
//
// Errors keep the error that caused them, so a combined error still
// matches the original sentinels with errors.Is.
package diagnostic
