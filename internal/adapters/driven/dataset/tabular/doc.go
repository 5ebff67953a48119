// Package tabular reads trip datasets stored as header-first tables.
//
// Readers:
//   - CSVReader: comma-separated files (.csv)
//   - XLSXReader: Excel workbooks (.xlsx), first sheet only
//
// Both share one header mapping. Required columns are "Start Time",
// "Trip Duration", "Start Station", "End Station" and "User Type".
// "End Time", "Gender" and "Birth Year" are optional, and an unnamed
// leading column is kept as the trip ID.
package tabular
