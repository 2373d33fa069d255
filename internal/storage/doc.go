// Package storage reads and writes field snapshots of a simulation case.
//
// A case is a directory. Every backend exposes the same [Store] view of
// it: an ordered set of time instances, each holding named scalar fields.
//
//   - [YAMLStore]: <case>/<time>/<field>.yaml documents
//   - [HDF5Store]: <case>/<time>/<field>.h5 files with a /values dataset
//   - [SQLiteStore]: a single <case>/fields.db database
//
// Use [Open] to pick a backend by [Format].
package storage
