package api

const (
	NodeTypeReadFile    = "readfile"
	NodeTypeRunScript   = "runscript"
	NodeTypeWriteFile   = "writefile"
	NodeTypeHTTPGetFile = "httpgetfile"
)

// NodeConfig is one declared step of a pipeline document. Which of the
// type-specific fields must be set depends on Node; see Validate.
type NodeConfig struct {
	Node   string `yaml:"node"`
	ID     string `yaml:"id"`
	Path   string `yaml:"path,omitempty"`
	URL    string `yaml:"url,omitempty"`
	Input  string `yaml:"input,omitempty"`
	Output string `yaml:"output,omitempty"`

	// Set by the loader, not from YAML.
	Index  int `yaml:"-"`
	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// Pipeline is the ordered node sequence of one document. Declaration order
// is significant: a node's fields may only reference ids of nodes declared
// strictly before it.
type Pipeline struct {
	Nodes []NodeConfig

	// Set by the loader, not from YAML.
	Dir      string
	FilePath string
}
