package manifest

// ManifestFileName is the manifest file expected at a repository root.
const ManifestFileName = "templatekit.yaml"

// Repository is the validated model of one template repository.
// It is constructed once per parse and must not be mutated afterwards.
type Repository struct {
	Name         string
	Description  string
	Version      string
	Author       string
	Instructions []Instruction // declared order preserved
	Bundles      []Bundle      // declared order preserved
}

// Instruction is a single reusable document declared in the manifest.
// Checksum is the SHA-256 hex digest of the referenced file's bytes,
// computed at parse time.
type Instruction struct {
	Name        string
	Description string
	File        string // relative to the repository root
	Tags        []string
	Checksum    string
}

// Bundle is a named, ordered grouping of instruction references.
// Instructions holds instruction names, not paths; every name is
// guaranteed to resolve within the same Repository.
type Bundle struct {
	Name         string
	Description  string
	Instructions []string
	Tags         []string
}

// Instruction returns the instruction with the given name, or false if the
// repository does not declare it.
func (r *Repository) Instruction(name string) (Instruction, bool) {
	for _, inst := range r.Instructions {
		if inst.Name == name {
			return inst, true
		}
	}
	return Instruction{}, false
}

// Bundle returns the bundle with the given name, or false if the repository
// does not declare it.
func (r *Repository) Bundle(name string) (Bundle, bool) {
	for _, b := range r.Bundles {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}

// Document is the raw decoded manifest prior to validation. Field values may
// be missing or empty; the parser converts a Document into a Repository and
// never lets unvalidated data escape.
type Document struct {
	Name         string           `yaml:"name"`
	Description  string           `yaml:"description"`
	Version      string           `yaml:"version"`
	Author       string           `yaml:"author"`
	Instructions []rawInstruction `yaml:"instructions"`
	Bundles      []rawBundle      `yaml:"bundles"`
}

type rawInstruction struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	File        string   `yaml:"file"`
	Tags        []string `yaml:"tags"`
}

type rawBundle struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Instructions []string `yaml:"instructions"`
	Tags         []string `yaml:"tags"`
}
