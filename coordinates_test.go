package clearlydefined

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		input string
		want  Coordinates
	}{
		{
			"npm/npmjs/-/left-pad/1.3.0",
			Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.3.0"},
		},
		{
			"npm/npmjs/-/left-pad",
			Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad"},
		},
		{
			"npm/npmjs/@scope/utils/1.0.0",
			Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Namespace: "@scope", Name: "utils", Revision: "1.0.0"},
		},
		{
			"maven/mavencentral/com.google.guava/guava/31.1-jre",
			Coordinates{Type: TypeMaven, Provider: ProviderMavenCentral, Namespace: "com.google.guava", Name: "guava", Revision: "31.1-jre"},
		},
		{
			// Segments past the fourth slash stay in the revision.
			"git/github/org/name/refs/tags/v1",
			Coordinates{Type: TypeGit, Provider: ProviderGitHub, Namespace: "org", Name: "name", Revision: "refs/tags/v1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCoordinates(tt.input)
			if err != nil {
				t.Fatalf("ParseCoordinates(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoordinates(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCoordinatesErrors(t *testing.T) {
	tests := []struct {
		input  string
		reason string
	}{
		{"npm/npmjs", "too few segments"},
		{"npm", "too few segments"},
		{"", "too few segments"},
		{"bogus/npmjs/-/name/1.0", "unknown type"},
		{"NPM/npmjs/-/name/1.0", "unknown type"},
		{"npm/bogus/-/name/1.0", "unknown provider"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseCoordinates(tt.input)
			if err == nil {
				t.Fatalf("ParseCoordinates(%q) expected error", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if perr.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", perr.Reason, tt.reason)
			}
			if perr.Input != tt.input {
				t.Errorf("Input = %q, want %q", perr.Input, tt.input)
			}
		})
	}
}

func TestCoordinatesString(t *testing.T) {
	tests := []struct {
		coord Coordinates
		want  string
	}{
		{
			// Absent namespace renders as the "-" placeholder.
			Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.3.0"},
			"npm/npmjs/-/left-pad/1.3.0",
		},
		{
			// Absent revision is omitted, no trailing slash or placeholder.
			Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad"},
			"npm/npmjs/-/left-pad",
		},
		{
			Coordinates{Type: TypeGem, Provider: ProviderRubyGems, Name: "rails", Revision: "7.0.4"},
			"gem/rubygems/-/rails/7.0.4",
		},
		{
			Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Namespace: "@scope", Name: "utils"},
			"npm/npmjs/@scope/utils",
		},
	}

	for _, tt := range tests {
		if got := tt.coord.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCoordinatesRoundTrip(t *testing.T) {
	coords := []Coordinates{
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad"},
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.3.0"},
		{Type: TypeNPM, Provider: ProviderNpmjs, Namespace: "@scope", Name: "utils", Revision: "1.0.0"},
		{Type: TypeGit, Provider: ProviderGitHub, Namespace: "org", Name: "name", Revision: "refs/tags/v1"},
		{Type: TypeSourceArchive, Provider: ProviderMavenCentral, Namespace: "com.example", Name: "lib", Revision: "2.0"},
	}
	for _, c := range coords {
		got, err := ParseCoordinates(c.String())
		if err != nil {
			t.Fatalf("parse(%q) error: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("parse(format(%+v)) = %+v", c, got)
		}
	}

	strs := []string{
		"npm/npmjs/-/left-pad",
		"npm/npmjs/-/left-pad/1.3.0",
		"pypi/pypi/-/requests/2.28.1",
		"crate/cratesio/-/serde/1.0.150",
		"git/github/org/name/refs/tags/v1",
	}
	for _, s := range strs {
		c, err := ParseCoordinates(s)
		if err != nil {
			t.Fatalf("parse(%q) error: %v", s, err)
		}
		if got := c.String(); got != s {
			t.Errorf("format(parse(%q)) = %q", s, got)
		}
	}
}

func TestCoordinatesJSONMapKey(t *testing.T) {
	m := map[Coordinates]int{
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.3.0"}: 1,
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"npm/npmjs/-/left-pad/1.3.0":1}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var decoded map[Coordinates]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	key := Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.3.0"}
	if decoded[key] != 1 {
		t.Errorf("decoded[%v] = %d, want 1", key, decoded[key])
	}
}

func TestCoordinatesJSONField(t *testing.T) {
	c := Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.3.0"}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"type":"npm","provider":"npmjs","name":"left-pad","revision":"1.3.0"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var decoded Coordinates
	if err := json.Unmarshal([]byte(`{"type":"maven","provider":"mavencentral","namespace":"com.example","name":"lib"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	wantCoord := Coordinates{Type: TypeMaven, Provider: ProviderMavenCentral, Namespace: "com.example", Name: "lib"}
	if decoded != wantCoord {
		t.Errorf("Unmarshal() = %+v, want %+v", decoded, wantCoord)
	}
}
