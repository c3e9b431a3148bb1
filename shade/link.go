package shade

// ShaderParam is a parameter source. L is the source-specific link type: an
// index structure that only means something to the source that created it.
type ShaderParam[L any] interface {
	// CreateLink resolves the declared inputs against the source. It fails
	// with a *ParameterLinkError naming the first input it cannot supply.
	CreateLink(in ParamLinkInput) (L, error)
	// FillParams writes every slot the link covers into out. It never fails
	// for a link created against the program out was sized for.
	FillParams(link L, out ParamValues)
}

// NoLink is the link of NoParams.
type NoLink struct{}

// NoParams is the empty parameter source. It only links to programs that
// declare no inputs.
type NoParams struct{}

var _ ShaderParam[NoLink] = NoParams{}

// CreateLink succeeds only for an empty signature. The offending input is
// reported with the placeholder name "_".
func (NoParams) CreateLink(in ParamLinkInput) (NoLink, error) {
	switch {
	case len(in.Uniforms) > 0:
		return NoLink{}, missing(UniformError("_"))
	case len(in.Blocks) > 0:
		return NoLink{}, missing(BlockError("_"))
	case len(in.Textures) > 0:
		return NoLink{}, missing(TextureError("_"))
	}
	return NoLink{}, nil
}

// FillParams does nothing.
func (NoParams) FillParams(NoLink, ParamValues) {}
