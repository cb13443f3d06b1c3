package client

import (
	nlpearl "github.com/spetersoncode/nlpearl"
)

// nonEmpty returns an InvalidArgumentError naming arg if value is empty.
func nonEmpty(op, arg, value string) error {
	if value == "" {
		return &nlpearl.InvalidArgumentError{Op: op, Arg: arg, Reason: "must not be empty", Cause: nlpearl.ErrEmptyInput}
	}
	return nil
}

// nonEmptyAll checks several named values in order and returns the first failure.
func nonEmptyAll(op string, pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := nonEmpty(op, pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// nonEmptyList rejects an empty list or one containing empty identifiers.
func nonEmptyList(op, arg string, values []string) error {
	if len(values) == 0 {
		return &nlpearl.InvalidArgumentError{Op: op, Arg: arg, Reason: "must be a non-empty list", Cause: nlpearl.ErrEmptyInput}
	}
	for _, v := range values {
		if v == "" {
			return &nlpearl.InvalidArgumentError{Op: op, Arg: arg, Reason: "must not contain empty identifiers", Cause: nlpearl.ErrEmptyInput}
		}
	}
	return nil
}

// haveDates rejects unset date bounds.
func haveDates(op string, from, to nlpearl.Date) error {
	if from.IsZero() {
		return &nlpearl.InvalidArgumentError{Op: op, Arg: "from", Reason: "date is required", Cause: nlpearl.ErrEmptyInput}
	}
	if to.IsZero() {
		return &nlpearl.InvalidArgumentError{Op: op, Arg: "to", Reason: "date is required", Cause: nlpearl.ErrEmptyInput}
	}
	return nil
}
