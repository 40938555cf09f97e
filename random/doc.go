// Package random provides random numbers, selections, strings and UUIDs.
//
// Numbers come from math/rand/v2's global source, which is safe for
// concurrent use and not suitable for secrets. Range arguments that cannot
// describe a range are programmer errors: Int, Float and BoolWithProbability
// panic with an *errors.AppError carrying ErrCodeInvalidRange.
package random
