// Package types defines the document model, profile record view, handle
// and editor types, and standard errors for the Satchel profile store.
package types
