package model

import "errors"

// Fatal errors, the run can't continue without storage or a catalog.
var (
	ErrDirectoryNotWritable  = errors.New("directory is not writable")
	ErrDirectoryCreateFailed = errors.New("unable to create directory")
	ErrCatalogFetchFailed    = errors.New("unable to fetch catalog")
)

// Per item errors, the entry is recorded as failed and processing continues.
var (
	ErrCacheWriteFailure         = errors.New("unable to cache image")
	ErrUnsupportedOrInvalidImage = errors.New("unsupported or invalid image")
	ErrEncodeFailure             = errors.New("unable to save thumbnail")
	ErrInvalidImageURL           = errors.New("invalid image url")
	ErrInvalidTarget             = errors.New("invalid thumbnail target")
	ErrDuplicateThumbnail        = errors.New("thumbnail path already used")
)
