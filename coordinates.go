package clearlydefined

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ComponentType identifies the kind of component a coordinate names.
type ComponentType string

const (
	TypeNPM           ComponentType = "npm"
	TypeCrate         ComponentType = "crate"
	TypeGit           ComponentType = "git"
	TypeMaven         ComponentType = "maven"
	TypeComposer      ComponentType = "composer"
	TypeNuGet         ComponentType = "nuget"
	TypeGem           ComponentType = "gem"
	TypePyPI          ComponentType = "pypi"
	TypeSourceArchive ComponentType = "sourcearchive"
	TypeDeb           ComponentType = "deb"
	TypeDebSrc        ComponentType = "debsrc"
	TypePod           ComponentType = "pod"
	TypeGo            ComponentType = "go"
)

// Provider identifies the registry or host a component was harvested from.
type Provider string

const (
	ProviderNpmjs        Provider = "npmjs"
	ProviderCocoaPods    Provider = "cocoapods"
	ProviderCratesIO     Provider = "cratesio"
	ProviderDebian       Provider = "debian"
	ProviderGitHub       Provider = "github"
	ProviderMavenCentral Provider = "mavencentral"
	ProviderNuGet        Provider = "nuget"
	ProviderRubyGems     Provider = "rubygems"
	ProviderPyPI         Provider = "pypi"
	ProviderPackagist    Provider = "packagist"
	ProviderGolang       Provider = "golang"
	ProviderSourceForge  Provider = "sourceforge"
)

// The service's member sets. Matching is exact and case-sensitive.
var (
	componentTypes = map[ComponentType]bool{
		TypeNPM: true, TypeCrate: true, TypeGit: true, TypeMaven: true,
		TypeComposer: true, TypeNuGet: true, TypeGem: true, TypePyPI: true,
		TypeSourceArchive: true, TypeDeb: true, TypeDebSrc: true,
		TypePod: true, TypeGo: true,
	}
	providers = map[Provider]bool{
		ProviderNpmjs: true, ProviderCocoaPods: true, ProviderCratesIO: true,
		ProviderDebian: true, ProviderGitHub: true, ProviderMavenCentral: true,
		ProviderNuGet: true, ProviderRubyGems: true, ProviderPyPI: true,
		ProviderPackagist: true, ProviderGolang: true, ProviderSourceForge: true,
	}
)

// Coordinates identifies a component instance.
// Namespace and Revision are optional; an empty string means absent.
// An absent Revision asks the service to resolve the latest revision.
type Coordinates struct {
	Type      ComponentType
	Provider  Provider
	Namespace string
	Name      string
	Revision  string
}

// ParseError reports a coordinate string that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid coordinates %q: %s", e.Input, e.Reason)
}

// ParseCoordinates parses the canonical slash-delimited coordinate form
// "type/provider/namespace/name/revision". The namespace placeholder "-"
// maps to absent, and the revision segment may be omitted. Anything past
// the fourth slash stays attached to the revision, so path-like revisions
// such as "refs/tags/v1" survive intact.
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.SplitN(s, "/", 5)
	if len(parts) < 4 {
		return Coordinates{}, &ParseError{Input: s, Reason: "too few segments"}
	}

	ct := ComponentType(parts[0])
	if !componentTypes[ct] {
		return Coordinates{}, &ParseError{Input: s, Reason: "unknown type"}
	}
	p := Provider(parts[1])
	if !providers[p] {
		return Coordinates{}, &ParseError{Input: s, Reason: "unknown provider"}
	}

	c := Coordinates{
		Type:     ct,
		Provider: p,
		Name:     parts[3],
	}
	if parts[2] != "-" {
		c.Namespace = parts[2]
	}
	if len(parts) == 5 {
		c.Revision = parts[4]
	}
	return c, nil
}

// String returns the canonical coordinate form. An absent namespace is
// rendered as "-"; an absent revision is omitted along with its slash.
func (c Coordinates) String() string {
	ns := c.Namespace
	if ns == "" {
		ns = "-"
	}
	s := string(c.Type) + "/" + string(c.Provider) + "/" + ns + "/" + c.Name
	if c.Revision != "" {
		s += "/" + c.Revision
	}
	return s
}

// MarshalText encodes the canonical string form. encoding/json picks this
// up when Coordinates is used as a map key, as in batch definition
// responses keyed by coordinate string.
func (c Coordinates) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses the canonical string form.
func (c *Coordinates) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinates(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// coordinatesJSON is the structural wire form used when Coordinates
// appears as a record field rather than a map key.
type coordinatesJSON struct {
	Type      ComponentType `json:"type"`
	Provider  Provider      `json:"provider"`
	Namespace string        `json:"namespace,omitempty"`
	Name      string        `json:"name"`
	Revision  string        `json:"revision,omitempty"`
}

// MarshalJSON encodes the structural object form. Map keys still go
// through MarshalText; encoding/json prefers json.Marshaler only for
// values.
func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinatesJSON{
		Type:      c.Type,
		Provider:  c.Provider,
		Namespace: c.Namespace,
		Name:      c.Name,
		Revision:  c.Revision,
	})
}

// UnmarshalJSON decodes the structural object form. A JSON string payload
// — as encoding/json hands this method for map keys, since it prefers
// json.Unmarshaler over encoding.TextUnmarshaler there too — is delegated
// to the string codec. Enum members are not re-validated on the structural
// path: decoding is total over the documented schema, and validation
// belongs to the string codec.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}
	var raw coordinatesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Coordinates{
		Type:      raw.Type,
		Provider:  raw.Provider,
		Namespace: raw.Namespace,
		Name:      raw.Name,
		Revision:  raw.Revision,
	}
	return nil
}

// SourceLocation points at a concrete source snapshot. It mirrors the five
// coordinate fields but is an independent record: a located source always
// has a revision, and it may carry a path within the snapshot and a URL.
type SourceLocation struct {
	Type      ComponentType `json:"type,omitempty"`
	Provider  Provider      `json:"provider,omitempty"`
	Namespace string        `json:"namespace,omitempty"`
	Name      string        `json:"name,omitempty"`
	Revision  string        `json:"revision"`
	Path      string        `json:"path,omitempty"`
	URL       string        `json:"url,omitempty"`
}
