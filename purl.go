package clearlydefined

import (
	"fmt"

	"github.com/git-pkgs/purl"
)

// purlTypes maps package URL types to the service's type/provider pairs.
// Each purl type implies its canonical public registry; a coordinate for
// a mirror or private host cannot be derived from a purl alone.
var purlTypes = map[string]struct {
	Type     ComponentType
	Provider Provider
}{
	"npm":       {TypeNPM, ProviderNpmjs},
	"maven":     {TypeMaven, ProviderMavenCentral},
	"pypi":      {TypePyPI, ProviderPyPI},
	"gem":       {TypeGem, ProviderRubyGems},
	"nuget":     {TypeNuGet, ProviderNuGet},
	"cargo":     {TypeCrate, ProviderCratesIO},
	"composer":  {TypeComposer, ProviderPackagist},
	"golang":    {TypeGo, ProviderGolang},
	"cocoapods": {TypePod, ProviderCocoaPods},
	"deb":       {TypeDeb, ProviderDebian},
	"github":    {TypeGit, ProviderGitHub},
}

// CoordinatesFromPURL converts a package URL into service coordinates,
// e.g. "pkg:npm/%40scope/name@1.2.3" into "npm/npmjs/@scope/name/1.2.3".
// The purl version, when present, becomes the revision.
func CoordinatesFromPURL(purlStr string) (Coordinates, error) {
	p, err := purl.Parse(purlStr)
	if err != nil {
		return Coordinates{}, err
	}

	m, ok := purlTypes[p.Type]
	if !ok {
		return Coordinates{}, fmt.Errorf("unsupported purl type: %s", p.Type)
	}

	// Namespace and Name come straight from the parsed purl; FullName()
	// joins them with a type-specific separator (":" for maven) and is
	// not safe to re-split.
	return Coordinates{
		Type:      m.Type,
		Provider:  m.Provider,
		Namespace: p.Namespace,
		Name:      p.Name,
		Revision:  p.Version,
	}, nil
}
