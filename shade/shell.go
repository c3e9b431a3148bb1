package shade

import (
	"fmt"

	"github.com/richinsley/goshaderparams/device"
)

// ProgramShell pairs a program with the parameters to draw it with.
// device.ProgramHandle is the parameterless shell.
type ProgramShell interface {
	GetProgram() device.ProgramHandle
	FillParams(out ParamValues)
}

var _ ProgramShell = device.ProgramHandle{}

// CustomShell binds a program to a user parameter source through a link
// created against that same program.
type CustomShell[L any, T ShaderParam[L]] struct {
	program device.ProgramHandle
	link    L
	// Data is the parameter source. Mutating it is how parameters change
	// between draws.
	Data T
}

// Connect creates the link between program and data and wraps both in a
// shell. It is the only way to build a CustomShell, so a shell never holds a
// link made for another program.
//
// The shell keeps data as given and takes ownership of it. Pass a
// *SharedDictionary as a Clone so the shell holds its own reference, and
// release that handle only when the shell is no longer drawn.
func Connect[L any, T ShaderParam[L]](program device.ProgramHandle, data T) (*CustomShell[L, T], error) {
	link, err := data.CreateLink(LinkInput(program.Info))
	if err != nil {
		return nil, fmt.Errorf("connecting program %d: %w", program.Name, err)
	}
	return &CustomShell[L, T]{program: program, link: link, Data: data}, nil
}

// GetProgram returns the wrapped program.
func (s *CustomShell[L, T]) GetProgram() device.ProgramHandle {
	return s.program
}

// FillParams fills out from Data through the stored link.
func (s *CustomShell[L, T]) FillParams(out ParamValues) {
	s.Data.FillParams(s.link, out)
}

// Relink replaces the program, e.g. after a shader reload changed its
// signature, and rebuilds the link. On error the shell is left unchanged.
func (s *CustomShell[L, T]) Relink(program device.ProgramHandle) error {
	link, err := s.Data.CreateLink(LinkInput(program.Info))
	if err != nil {
		return fmt.Errorf("relinking program %d: %w", program.Name, err)
	}
	s.program = program
	s.link = link
	return nil
}
