package paramset

// Source indicates where a parameter's current value came from.
type Source string

// Parameter source constants, lowest precedence first.
const (
	// SourceDefault indicates the value is the definition's default.
	SourceDefault Source = "default"
	// SourceFile indicates the value came from the config file.
	SourceFile Source = "file"
	// SourceFlag indicates the value was given on the command line.
	SourceFlag Source = "flag"
)
