package catalog

import "errors"

var (
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON catalog")
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrInvalidStructure  = errors.New("invalid catalog structure")
)
