package catalog

// Family groups directives that share a rendering strategy.
type Family uint8

const (
	// FamilyPassFail is a compile/run pass or fail expectation.
	FamilyPassFail Family = iota
	// FamilyBuildAux declares auxiliary compilation units.
	FamilyBuildAux
	// FamilyPretty is a pretty-printer test directive.
	FamilyPretty
	// FamilyPlatform restricts the test to, or excludes, platforms.
	FamilyPlatform
	// FamilyEnvVar sets or unsets environment variables.
	FamilyEnvVar
	// FamilyMisc covers flags, editions, normalization and the rest.
	FamilyMisc
	// FamilyAssembly is an assembly/codegen test directive.
	FamilyAssembly
	// FamilyTool requires external tool support.
	FamilyTool
)

func (f Family) String() string {
	switch f {
	case FamilyPassFail:
		return "pass-fail"
	case FamilyBuildAux:
		return "build-aux"
	case FamilyPretty:
		return "pretty"
	case FamilyPlatform:
		return "platform"
	case FamilyEnvVar:
		return "env-var"
	case FamilyMisc:
		return "misc"
	case FamilyAssembly:
		return "assembly"
	case FamilyTool:
		return "tool"
	}
	return "unknown"
}

// ParseFamily resolves a family from its string form.
func ParseFamily(s string) (Family, bool) {
	for f := FamilyPassFail; f <= FamilyTool; f++ {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// Arity describes the argument contract of a directive.
type Arity uint8

const (
	// ArityZero takes no argument.
	ArityZero Arity = iota
	// ArityOne takes a single free-form argument.
	ArityOne
	// ArityKeyValue takes a NAME=VALUE argument.
	ArityKeyValue
)

func (a Arity) String() string {
	switch a {
	case ArityZero:
		return "zero-arg"
	case ArityOne:
		return "one-arg"
	case ArityKeyValue:
		return "key-value"
	}
	return "unknown"
}
