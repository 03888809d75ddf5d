package clearlydefined

import (
	"github.com/git-pkgs/registries"
	_ "github.com/git-pkgs/registries/all"
	"github.com/git-pkgs/vers"
)

// ecosystems maps component types to the ecosystem names the registries
// package understands. Types without a public registry (git, source
// archives) have no entry.
var ecosystems = map[ComponentType]string{
	TypeNPM:      "npm",
	TypeCrate:    "cargo",
	TypeMaven:    "maven",
	TypeComposer: "composer",
	TypeNuGet:    "nuget",
	TypeGem:      "gem",
	TypePyPI:     "pypi",
	TypeGo:       "golang",
	TypePod:      "cocoapods",
	TypeDeb:      "deb",
	TypeDebSrc:   "deb",
}

// RegistryURL returns the default registry URL for a coordinate's
// component type, or "" for types that have no public registry.
func RegistryURL(c Coordinates) string {
	eco, ok := ecosystems[c.Type]
	if !ok {
		return ""
	}
	return registries.DefaultURL(eco)
}

// LatestRevision returns the coordinate with the highest revision using
// version comparison, for picking the newest entry among search results
// for the same component. Coordinates without a revision are skipped;
// ok is false when no candidate has one.
func LatestRevision(coords []Coordinates) (latest Coordinates, ok bool) {
	for _, c := range coords {
		if c.Revision == "" {
			continue
		}
		if !ok || vers.Compare(c.Revision, latest.Revision) > 0 {
			latest = c
			ok = true
		}
	}
	return latest, ok
}
