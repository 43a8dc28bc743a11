package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile    string
	BatchFiles []string
	Locale     string
	Format     string
	OutputFile string
	Archive    bool
	Jobs       int
	Verbose    bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Locale: "invariant",
		Format: "text",
		Jobs:   4,
	}
}
