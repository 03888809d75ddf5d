package clearlydefined

import "testing"

func TestRegistryURL(t *testing.T) {
	npm := Coordinates{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad"}
	if got := RegistryURL(npm); got == "" {
		t.Error("expected default registry URL for npm, got empty")
	}

	git := Coordinates{Type: TypeGit, Provider: ProviderGitHub, Namespace: "org", Name: "name"}
	if got := RegistryURL(git); got != "" {
		t.Errorf("RegistryURL(git) = %q, want empty", got)
	}
}

func TestLatestRevision(t *testing.T) {
	coords := []Coordinates{
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.0.0"},
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.3.0"},
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad"},
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad", Revision: "1.2.0"},
	}

	latest, ok := LatestRevision(coords)
	if !ok {
		t.Fatal("LatestRevision() ok = false, want true")
	}
	if latest.Revision != "1.3.0" {
		t.Errorf("Revision = %q, want %q", latest.Revision, "1.3.0")
	}
}

func TestLatestRevisionNoCandidates(t *testing.T) {
	if _, ok := LatestRevision(nil); ok {
		t.Error("LatestRevision(nil) ok = true, want false")
	}

	noRevisions := []Coordinates{
		{Type: TypeNPM, Provider: ProviderNpmjs, Name: "left-pad"},
	}
	if _, ok := LatestRevision(noRevisions); ok {
		t.Error("LatestRevision() ok = true for revisionless input, want false")
	}
}
