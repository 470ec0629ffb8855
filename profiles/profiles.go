// Package profiles resolves named board configurations into I3C controller
// timing requests.
package profiles

import (
	"encoding/json"
	"sort"

	"i3ctiming/drivers/i3c"
	"i3ctiming/errcode"
)

var ErrUnknownProfile = errcode.New(errcode.UnknownProfile, "profiles", "no embedded profile")

// EmbeddedProfileLookup allows overriding how profiles are resolved.
var EmbeddedProfileLookup = func(name string) ([]byte, bool) {
	b, ok := embeddedProfiles[name]
	return b, ok
}

// EmbeddedProfileNames lists the names Names reports; override together
// with EmbeddedProfileLookup.
var EmbeddedProfileNames = func() []string {
	out := make([]string, 0, len(embeddedProfiles))
	for k := range embeddedProfiles {
		out = append(out, k)
	}
	return out
}

// Profile is a named controller timing request.
type Profile struct {
	Name          string `json:"-"`
	ClockSourceHz uint32 `json:"clock_source_hz"`
	I3CFreqHz     uint32 `json:"i3c_hz"`
	I2CFreqHz     uint32 `json:"i2c_hz"`
	DutyCycle     uint32 `json:"duty_cycle"`
	Bus           string `json:"bus"`
}

// Load decodes the embedded profile called name.
func Load(name string) (Profile, error) {
	raw, ok := EmbeddedProfileLookup(name)
	if !ok || len(raw) == 0 {
		return Profile{}, ErrUnknownProfile
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, &errcode.E{C: errcode.InvalidPayload, Op: "profiles", Msg: name, Err: err}
	}
	p.Name = name
	return p, nil
}

// Request converts p into a controller request.
func (p Profile) Request() (i3c.ControllerRequest, error) {
	bus, err := i3c.ParseBusMode(p.Bus)
	if err != nil {
		return i3c.ControllerRequest{}, err
	}
	return i3c.ControllerRequest{
		ClockSourceHz: p.ClockSourceHz,
		I3CFreqHz:     p.I3CFreqHz,
		I2CFreqHz:     p.I2CFreqHz,
		DutyCycle:     p.DutyCycle,
		Bus:           bus,
	}, nil
}

// Names returns the embedded profile names, sorted.
func Names() []string {
	names := EmbeddedProfileNames()
	sort.Strings(names)
	return names
}
