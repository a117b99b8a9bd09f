package tapcode

import "errors"

var (
	ErrInvalidAlphabetLength = errors.New("tapcode: alphabet must contain exactly 25 characters")
	ErrDuplicateCharacter    = errors.New("tapcode: alphabet contains duplicate characters")
	ErrSeparatorCharacter    = errors.New("tapcode: alphabet cannot contain whitespace or '|'")
	ErrEmptyMessage          = errors.New("tapcode: message cannot be empty")
	ErrEmptyInput            = errors.New("tapcode: tapcode input cannot be empty")
	ErrCharacterNotInGrid    = errors.New("tapcode: message contains characters not in the grid")
	ErrMalformedTapSequence  = errors.New("tapcode: invalid tapcode input")
	ErrInvalidTapToken       = errors.New("tapcode: invalid tap token")
	ErrInvalidCoordinates    = errors.New("tapcode: invalid tapcode coordinates")
)
