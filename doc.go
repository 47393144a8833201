// Command simpledb (see cmd/simpledb) is a minimal persistent single-table
// storage engine reached through an interactive line-oriented shell. This
// root package exists only to host the end-to-end shell tests in
// main_test.go; the engine itself lives in package engine, its B-tree in
// package btree, its page cache in package pager, and its record codec in
// package row.
package simpledb
