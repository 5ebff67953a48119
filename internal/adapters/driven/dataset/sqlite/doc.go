// Package sqlite reads trip datasets from SQLite databases.
//
// The database is opened read-only and must contain a "trips" table with the
// columns start_time, trip_duration, start_station, end_station and
// user_type. The columns id, end_time, gender and birth_year are optional.
package sqlite
