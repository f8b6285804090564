/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package errors

import "fmt"

// Validation is an error type that indicates a schedule descriptor which can
// never form a valid schedule, for example supplying both weekdays and
// monthdays.
type Validation struct {
	err string
}

func (v Validation) Error() string {
	return v.err
}

func NewValidation(format string, args ...any) Validation {
	return Validation{err: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	_, ok := err.(Validation)
	return ok
}

// Unresolvable is an error type that indicates a valid schedule whose next
// occurrence could not be resolved within the engine's search bounds, either
// because no configured day exists on the calendar or because no resolvable
// local time was found around a daylight saving transition. It signals a
// configuration problem and is not retried.
type Unresolvable struct {
	err string
}

func (u Unresolvable) Error() string {
	return u.err
}

func NewUnresolvable(format string, args ...any) Unresolvable {
	return Unresolvable{err: fmt.Sprintf(format, args...)}
}

func IsUnresolvable(err error) bool {
	_, ok := err.(Unresolvable)
	return ok
}
