package preset

import (
	"github.com/richinsley/goshaderparams/device"
	"github.com/richinsley/goshaderparams/shade"
)

// Report is the result of linking a dictionary against a signature.
type Report struct {
	// Missing is the link error, nil when every declared input resolves.
	Missing error
	Unused  []*shade.ParameterLinkError
}

// OK reports whether the dictionary can drive the program. With strict set
// unused entries also fail.
func (r Report) OK(strict bool) bool {
	return r.Missing == nil && (!strict || len(r.Unused) == 0)
}

// Check links d against info without creating a shell.
func Check(info *device.ProgramInfo, d *shade.ParamDictionary) Report {
	in := shade.LinkInput(info)
	_, err := d.CreateLink(in)
	return Report{Missing: err, Unused: d.Unused(in)}
}
