// Package types defines the shared data model of the pakt resolution
// core: pipelines with their rest-marker entries, declaration-ordered
// glob maps, and the plugin capability contracts.
package types
