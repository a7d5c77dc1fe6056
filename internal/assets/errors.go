package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrMediaNotFound indicates the requested media file does not exist.
	ErrMediaNotFound = errors.New("media not found")

	// ErrInvalidMediaName indicates the media name is empty, contains path
	// separators or traversal sequences, or has an unsupported extension.
	ErrInvalidMediaName = errors.New("invalid media name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading a media file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
