package engine

import perr "mishkal/internal/platform/errors"

// Errorf builds an engine failure; the formatted text is the message clients see
func Errorf(format string, a ...any) error { return perr.Enginef(format, a...) }

// AsError converts any failure coming out of an engine into an engine error
// the client message is the full err.Error() text and the cause stays reachable through errors.Is
func AsError(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*perr.Error); ok && pe.Code() == perr.ErrorCodeEngine {
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeEngine, err.Error())
}

// IsEngineError reports whether err is an engine failure
func IsEngineError(err error) bool { return perr.IsCode(err, perr.ErrorCodeEngine) }
