// Package storage persists headless runs on disk.
//
// Each run is a directory under the store's base dir holding metadata.json
// and samples.csv, one row per trajectory per sampled tick.
package storage
