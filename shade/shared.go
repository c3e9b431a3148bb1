package shade

import (
	"log"
	"sync/atomic"
)

type sharedDict struct {
	dict *ParamDictionary
	refs atomic.Int32
}

// SharedDictionary is a reference-counted handle to a ParamDictionary. Every
// handle cloned from the same Share call refers to the same cells, so a value
// set through one handle is seen by every link made through any of them.
type SharedDictionary struct {
	shared   *sharedDict
	released bool
}

var _ ShaderParam[*ParamDictionaryLink] = (*SharedDictionary)(nil)

// Share wraps d in a handle with a reference count of one.
func Share(d *ParamDictionary) *SharedDictionary {
	s := &sharedDict{dict: d}
	s.refs.Store(1)
	return &SharedDictionary{shared: s}
}

// Clone returns a new handle to the same dictionary.
func (s *SharedDictionary) Clone() *SharedDictionary {
	s.live()
	s.shared.refs.Add(1)
	return &SharedDictionary{shared: s.shared}
}

// Release drops this handle. The dictionary is dropped with the last handle.
func (s *SharedDictionary) Release() {
	s.live()
	s.released = true
	if s.shared.refs.Add(-1) == 0 {
		d := s.shared.dict
		s.shared.dict = nil
		log.Printf("shade: released shared dictionary (%d uniforms, %d blocks, %d textures)",
			len(d.Uniforms), len(d.Blocks), len(d.Textures))
	}
}

// Refs returns the number of live handles.
func (s *SharedDictionary) Refs() int {
	return int(s.shared.refs.Load())
}

// Dictionary returns the shared dictionary.
func (s *SharedDictionary) Dictionary() *ParamDictionary {
	s.live()
	return s.shared.dict
}

func (s *SharedDictionary) live() {
	if s.released || s.shared.dict == nil {
		panic("shade: use of released SharedDictionary")
	}
}

// CreateLink links against the shared dictionary.
func (s *SharedDictionary) CreateLink(in ParamLinkInput) (*ParamDictionaryLink, error) {
	return s.Dictionary().CreateLink(in)
}

// FillParams fills from the shared dictionary.
func (s *SharedDictionary) FillParams(link *ParamDictionaryLink, out ParamValues) {
	s.Dictionary().FillParams(link, out)
}
