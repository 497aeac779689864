// Package version resolves the current module version.
package version

import (
	"runtime/debug"
	"strings"
	"sync"

	"github.com/hashicorp/go-version"
)

const modulePath = "github.com/go-faster/press"

// Value describes the module version.
type Value struct {
	Major int
	Minor int
	Patch int
	Name  string // "alpha", "beta.1", "dev"
	Raw   string
}

func extract(info *debug.BuildInfo) Value {
	var raw string
	if strings.HasPrefix(info.Main.Path, modulePath) {
		raw = info.Main.Version
	}
	for _, d := range info.Deps {
		if strings.HasPrefix(d.Path, modulePath) {
			raw = d.Version
			break
		}
	}
	v, err := version.NewVersion(raw)
	if err != nil {
		// Zero-versioned dev build.
		return Value{Name: "dev", Raw: "0.0.1-dev"}
	}
	out := Value{
		Name: v.Prerelease(),
		Raw:  raw,
	}
	if s := v.Segments(); len(s) > 2 {
		out.Major, out.Minor, out.Patch = s[0], s[1], s[2]
	}
	return out
}

// Get optimistically resolves the module version from build info.
//
// Does not handle replace directives.
var Get = sync.OnceValue(func() Value {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Value{Name: "dev", Raw: "0.0.1-dev"}
	}
	return extract(info)
})
