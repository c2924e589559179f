package colour

import "errors"

var (
	// ErrInvalidArgument reports a NaN component or an empty keyword.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidName reports a keyword that is not in the named colour table.
	ErrInvalidName = errors.New("invalid colour name")

	// ErrInvalidComparison reports a comparison against a nil colour.
	ErrInvalidComparison = errors.New("invalid comparison")

	// ErrRange reports a bad count, alpha list length or angle step in the
	// palette generators.
	ErrRange = errors.New("out of range")

	// ErrImmutableAlpha is returned when changing the alpha of a Named colour.
	ErrImmutableAlpha = errors.New("alpha is fixed for named colours")

	// ErrUnparseable is returned by ParseStrict for input outside the grammar.
	ErrUnparseable = errors.New("unparseable colour")
)
