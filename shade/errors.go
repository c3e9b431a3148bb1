package shade

import (
	"errors"
	"fmt"
)

// ParamKind is the kind of program input a ParameterError refers to.
type ParamKind uint8

const (
	ParamInternal ParamKind = iota
	ParamUniform
	ParamBlock
	ParamTexture
)

func (k ParamKind) String() string {
	switch k {
	case ParamUniform:
		return "uniform"
	case ParamBlock:
		return "block"
	case ParamTexture:
		return "texture"
	default:
		return "internal"
	}
}

// ParameterError identifies the input that failed to resolve.
type ParameterError struct {
	Kind ParamKind
	Name string
}

func (e *ParameterError) Error() string {
	if e.Kind == ParamInternal {
		return "internal parameter error"
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Name)
}

// UniformError returns a ParameterError for the named uniform.
func UniformError(name string) ParameterError { return ParameterError{Kind: ParamUniform, Name: name} }

// BlockError returns a ParameterError for the named uniform block.
func BlockError(name string) ParameterError { return ParameterError{Kind: ParamBlock, Name: name} }

// TextureError returns a ParameterError for the named texture.
func TextureError(name string) ParameterError { return ParameterError{Kind: ParamTexture, Name: name} }

// LinkErrorKind tells why link creation rejected a parameter.
type LinkErrorKind uint8

const (
	// MissingParameter: the program declares an input the source cannot supply.
	MissingParameter LinkErrorKind = iota
	// UnusedParameter: the source offers a value the program never declares.
	UnusedParameter
)

var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrUnusedParameter  = errors.New("unused parameter")
)

// ParameterLinkError is returned by link creation.
type ParameterLinkError struct {
	Kind  LinkErrorKind
	Param ParameterError
}

func (e *ParameterLinkError) sentinel() error {
	if e.Kind == UnusedParameter {
		return ErrUnusedParameter
	}
	return ErrMissingParameter
}

func (e *ParameterLinkError) Error() string {
	return fmt.Sprintf("%v: %v", e.sentinel(), &e.Param)
}

// Unwrap exposes the ParameterError to errors.As.
func (e *ParameterLinkError) Unwrap() error { return &e.Param }

// Is matches ErrMissingParameter or ErrUnusedParameter.
func (e *ParameterLinkError) Is(target error) bool { return target == e.sentinel() }

func missing(p ParameterError) error {
	return &ParameterLinkError{Kind: MissingParameter, Param: p}
}

func unused(p ParameterError) *ParameterLinkError {
	return &ParameterLinkError{Kind: UnusedParameter, Param: p}
}
