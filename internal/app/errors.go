package app

import "errors"

var (
	// ErrUnknownOutputFormat indicates an output format other than json or yaml.
	ErrUnknownOutputFormat = errors.New("unknown output format")
	// ErrNoRegionCodes indicates a licenses run without any region code.
	ErrNoRegionCodes = errors.New("no region codes given")
)
