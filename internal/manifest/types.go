package manifest

// LibraryManifest declares the shared libraries a deployment requires.
type LibraryManifest struct {
	Name        string               `yaml:"name" json:"name"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Libraries   []LibraryRequirement `yaml:"libraries" json:"libraries"`
}

// LibraryRequirement is a single required library. Name is the base name
// without platform prefix or extension ("foo", not "libfoo.so").
type LibraryRequirement struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	Optional   bool   `yaml:"optional,omitempty" json:"optional,omitempty"`
}
