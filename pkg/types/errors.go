package types

import "errors"

// Storage errors.
var (
	ErrParse     = errors.New("row payload is not decodable JSON")
	ErrSerialize = errors.New("document cannot be serialized")
	ErrStorage   = errors.New("storage operation failed")
)

// Index and mutation errors.
var (
	ErrNotFound    = errors.New("profile not found")
	ErrNoDocuments = errors.New("no documents loaded")
)

// Icon materialization errors.
var (
	ErrImageDecode = errors.New("source image cannot be decoded")
	ErrImageEncode = errors.New("image cannot be encoded")
	ErrWriteFailed = errors.New("icon write failed")
	ErrCacheDir    = errors.New("cache directory cannot be created")
)

// Config validation errors.
var (
	ErrDBPathEmpty = errors.New("db path must not be empty")
)
