package config

// Resolved holds the two penalties a PathFinder is ultimately built
// with, after all overrides have been applied.
type Resolved struct {
	ViaPenalty   int64
	WrongPenalty int64
}

// Option mutates a Resolved during Resolve. Option constructors never
// panic and apply in the order given.
type Option func(*Resolved)

// Resolve starts from the input file's header penalties and applies
// opts in order, so a later option overrides an earlier one. With no
// options, the file's values pass through unchanged.
func Resolve(fileVia, fileWrong int64, opts ...Option) Resolved {
	r := Resolved{ViaPenalty: fileVia, WrongPenalty: fileWrong}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// WithViaPenalty overrides the via penalty, e.g. from a --via-penalty
// CLI flag. A negative n is rejected by the caller's own validation;
// Resolve itself performs no bounds checking.
func WithViaPenalty(n int64) Option {
	return func(r *Resolved) {
		r.ViaPenalty = n
	}
}

// WithWrongPenalty overrides the wrong-direction penalty, e.g. from a
// --wrong-direction-penalty CLI flag.
func WithWrongPenalty(n int64) Option {
	return func(r *Resolved) {
		r.WrongPenalty = n
	}
}
