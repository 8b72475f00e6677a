package lexer

// Version is the library's dotted version string, overridable at build
// time with -ldflags "-X cjslex/lexer.Version=...", the way the teacher's
// rootCmd.Version is wired to a build-time Version variable in main.go.
var Version = "1.0.0"

// VersionComponents is the C-ABI-friendly decomposition of Version.
type VersionComponents struct {
	Major    int
	Minor    int
	Revision int
}

// versionComponents holds the parsed form of Version, set by init().
var versionComponents VersionComponents

func init() {
	versionComponents = parseVersionComponents(Version)
}

func parseVersionComponents(v string) VersionComponents {
	var out VersionComponents
	parts := [3]*int{&out.Major, &out.Minor, &out.Revision}
	field := 0
	n := 0
	have := false
	for i := 0; i < len(v) && field < 3; i++ {
		ch := v[i]
		switch {
		case ch >= '0' && ch <= '9':
			n = n*10 + int(ch-'0')
			have = true
		case ch == '.':
			*parts[field] = n
			field++
			n = 0
		default:
			// stop at the first non-numeric, non-dot byte (e.g. a
			// "-rc1" suffix); whatever was parsed so far stands.
			if have {
				*parts[field] = n
			}
			return out
		}
	}
	if field < 3 {
		*parts[field] = n
	}
	return out
}

// GetVersionComponents returns the parsed major/minor/revision triple
// backing cjslex_get_version_components.
func GetVersionComponents() VersionComponents {
	return versionComponents
}
