package prob

import "errors"

// Sentinel errors. Operations wrap them with the failing site or argument;
// match with errors.Is.
var (
	// ErrNilModel indicates a nil generative program.
	ErrNilModel = errors.New("prob: model is nil")

	// ErrUnknownSite indicates a parameter set that does not line up with the
	// program's latent sites: a required latent site without a value, or a
	// value naming no latent site.
	ErrUnknownSite = errors.New("prob: unknown or missing site")

	// ErrShapeMismatch indicates a value whose length differs from the size
	// its distribution declares.
	ErrShapeMismatch = errors.New("prob: value shape does not match site")

	// ErrDuplicateSite indicates two sample sites with the same name in one run.
	ErrDuplicateSite = errors.New("prob: duplicate site name")

	// ErrInvalidSite indicates an empty site name or a nil distribution.
	ErrInvalidSite = errors.New("prob: invalid site declaration")

	// ErrInvalidDistribution indicates a distribution whose log-density is NaN,
	// usually a non-positive scale.
	ErrInvalidDistribution = errors.New("prob: invalid distribution parameters")

	// ErrUnseeded indicates a fresh draw was needed but no seed was set.
	ErrUnseeded = errors.New("prob: sample site requires a seed")

	// ErrNotObserved indicates the observation site carries no data.
	ErrNotObserved = errors.New("prob: observation site is not observed")

	// ErrBadNumSamples indicates a negative number of predictive draws.
	ErrBadNumSamples = errors.New("prob: number of samples must be >= 0")

	// ErrOptionViolation indicates an invalid Option passed to New.
	ErrOptionViolation = errors.New("prob: invalid option supplied")
)
