package profiles

// -----------------------------------------------------------------------------
// Embedded profiles
//
// Key: profile name, as passed to Load.
// Val: raw JSON bytes for that profile.
// -----------------------------------------------------------------------------

const profH5PureSDR = `{
  "clock_source_hz": 250000000,
  "i3c_hz": 12500000,
  "duty_cycle": 50,
  "bus": "pure"
}`

const profH5MixedFmPlus = `{
  "clock_source_hz": 250000000,
  "i3c_hz": 12500000,
  "i2c_hz": 1000000,
  "duty_cycle": 50,
  "bus": "mixed"
}`

const profBench50M = `{
  "clock_source_hz": 50000000,
  "i3c_hz": 2500000,
  "duty_cycle": 50,
  "bus": "pure"
}`

const profMixedFm = `{
  "clock_source_hz": 100000000,
  "i3c_hz": 12500000,
  "i2c_hz": 400000,
  "duty_cycle": 50,
  "bus": "mixed"
}`

var embeddedProfiles = map[string][]byte{
	"h5-pure-12m5":    []byte(profH5PureSDR),
	"h5-mixed-fmplus": []byte(profH5MixedFmPlus),
	"bench-50m-2m5":   []byte(profBench50M),
	"mixed-fm-400k":   []byte(profMixedFm),
}
