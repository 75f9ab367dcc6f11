package scenario

import (
	"errors"

	"github.com/ezrec/picpulse/translate"
)

var f = translate.From

var (
	ErrPinSyntax = errors.New(f("pin must be written as R<port><index>, e.g. RC2"))
)

// ErrKeyUnknown is a scenario global that is not a setting.
type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("'%v' is not a scenario setting", string(err))
}

// ErrKeyType is a scenario setting of the wrong type.
type ErrKeyType struct {
	Key  string
	Want string
}

func (err ErrKeyType) Error() string {
	return f("'%v' must be %v", err.Key, err.Want)
}

// ErrScenario locates an error in a scenario file.
type ErrScenario struct {
	Name string
	Err  error
}

func (err *ErrScenario) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrScenario) Unwrap() error {
	return err.Err
}
