package mapping

// SupportedVersion is the only script version Validate accepts.
const SupportedVersion = "1"

// Script is the root structure of an operation script.
type Script struct {
	Version string        `yaml:"version"`
	Mode    StringOrArray `yaml:"mode,omitempty"`
	Set     []Step        `yaml:"set,omitempty"`
	Expect  []Step        `yaml:"expect,omitempty"`
}

// Step addresses one path of the document.
type Step struct {
	Path  string        `yaml:"path"`
	Value any           `yaml:"value,omitempty"`
	Mode  StringOrArray `yaml:"mode,omitempty"`
	// Absent, on an expect step, requires the path not to resolve.
	Absent bool `yaml:"absent,omitempty"`

	// Line is the source line of the step, zero when built in code.
	Line int `yaml:"-"`

	valued bool
}

// HasValue reports whether the step carries a value, including an
// explicit null.
func (s *Step) HasValue() bool {
	return s.valued || s.Value != nil
}

// StringOrArray is a list of strings written either as a single string or
// as a sequence.
type StringOrArray []string
