package clearlydefined

// Curation is a community-supplied correction to a definition. Curations
// are sparse patch documents: absent sections must stay off the wire, so
// every field is optional and omitted when nil.
type Curation struct {
	Described *Described  `json:"described,omitempty"`
	Licensed  *Licensed   `json:"licensed,omitempty"`
	Files     []FileEntry `json:"files,omitempty"`
}

// ContributionInfo describes a curation contribution for review.
type ContributionInfo struct {
	Type               string   `json:"type,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	Details            string   `json:"details,omitempty"`
	Resolution         string   `json:"resolution,omitempty"`
	RemovedDefinitions []string `json:"removedDefinitions,omitempty"`
}

// Patch applies curations to one component, keyed by revision.
type Patch struct {
	Coordinates Coordinates         `json:"coordinates"`
	Revisions   map[string]Curation `json:"revisions,omitempty"`
}

// ContributionPatch is the body of a curation submission.
type ContributionPatch struct {
	ContributionInfo *ContributionInfo `json:"contributionInfo,omitempty"`
	Patches          []Patch           `json:"patches,omitempty"`
}

// ContributionSummary is the service's acknowledgement of a submitted
// curation: the pull request it opened and where to find it.
type ContributionSummary struct {
	PRNumber int    `json:"prNumber"`
	URL      string `json:"url"`
}

// HarvestRequest asks the service to run harvest tooling against a
// component. Tool and Policy are optional; the service picks defaults.
type HarvestRequest struct {
	Tool        string `json:"tool,omitempty"`
	Coordinates string `json:"coordinates"`
	Policy      string `json:"policy,omitempty"`
}
