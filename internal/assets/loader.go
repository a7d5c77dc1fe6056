package assets

// Loader defines the contract for loading preview media.
// Implementations may load from embedded assets, a directory on disk, etc.
type Loader interface {
	// Load returns the content of the named media file (e.g. "preview.css").
	// Returns ErrMediaNotFound if the media doesn't exist.
	// Returns ErrInvalidMediaName if the name contains invalid characters.
	Load(name string) (string, error)
}
