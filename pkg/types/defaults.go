// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultProfile returns the stock interest profile: stellar ages, rotation,
// and exoplanet demographics, with the UW–Madison affiliation rules. Every
// list is overridable through a profile YAML file; the defaults exist so the
// CLI works out of the box.
func DefaultProfile() Profile {
	return Profile{
		HighValueKeywords: []string{
			"hydrodynamic simulation",
			"exoplanet discovery",
			"common envelope",
			"gyrochronology",
			"planetary engulfment",
			"planet engulfment",
			"engulfment",
			"lithium depletion",
			"lithium abundance",
			"stellar age",
			"young planet",
			"stellar pollution",
			"exoplanet yield",
		},
		TopicKeywords: []string{
			"open cluster",
			"MESA",
			"NGC 188",
			"m dwarf",
			"gyrochronology",
			"stellar rotation",
			"exoplanet age",
			"planetary engulfment",
			"free-floating planet",
			"planet engulfment",
			"engulfment",
			"young stars",
			"TESS photometry",
			"stellar age",
			"rotational evolution",
			"starspot",
			"chromospheric activity",
			"Ursa Major",
			"Hyades",
			"Upper Sco",
			"gyrochronological",
			"age estimate",
			"age constraint",
			"lithium depletion",
			"lithium abundance",
			"lithium",
			"stellar pollution",
			"chemical abundance",
			"convective zone",
			"convective envelope",
			"transiting planet",
			"transiting exoplanet",
			"high-precision radial velocity",
			"asteroseismology",
			"Nancy Grace Roman Space Telescope",
			"Roman Space Telescope",
			"Roman wide field instrument",
			"Roman photometry",
			"debris disk",
			"transit survey",
			"transit search",
			"transit injection-recovery",
			"completeness",
			"planet validation",
			"joint transit RV fit",
			"radial velocity follow-up",
			"RV mass",
			"mass-radius relation",
			"occurrence rate",
			"planet demographics",
			"multi-planet system",
			"TTV",
			"Rossiter-McLaughlin",
			"spin-orbit",
			"obliquity",
			"transmission spectroscopy",
			"emission spectroscopy",
			"atmospheric retrieval",
			"clouds and hazes",
			"metallicity",
			"escape",
			"photoevaporation",
			"core-powered mass loss",
		},
		PriorityAuthors: []PriorityAuthor{
			{ORCID: "0009-0007-0488-5685", Names: []string{"Narayan, Ritvik Sai", "Narayan, R. S."}},
			{ORCID: "0000-0001-7493-7419", Names: []string{"Soares-Furtado, Melinda", "Soares-Furtado, M."}},
			{ORCID: "0009-0001-1360-8547", Names: []string{"Sheffler, Julia", "Sheffler, J."}},
			{ORCID: "0000-0001-7246-5438", Names: []string{"Vanderburg, Andrew", "Vanderburg, A."}},
		},
		Affiliation: AffiliationRules{
			ExcludeHints: []string{
				"university of washington",
				"uw seattle",
				"seattle, wa",
				"seattle wa",
				"washington, seattle",
				"dept. of astronomy, university of washington",
			},
			ExcludeCampuses: []string{
				"milwaukee", "green bay", "la crosse", "eau claire", "oshkosh",
				"parkside", "platteville", "river falls", "stevens point",
				"stout", "superior", "whitewater",
			},
			Patterns: []string{
				`\buw[\s\-–—]*madison\b`,
				`\buniversity of wisconsin[\s,\-–—]*madison\b`,
				`\buniv\.?\s*(of\s*)?wisconsin[\s,\-–—]*madison\b`,
				`\bu\.?\s*of\s*w\.?[\s,\-–—]*madison\b`,
				`\bwisconsin[\s,\-–—]*madison\b`,
				`\bspace science and engineering center\b.*\bmadison\b`,
				`\bssec\b.*\bmadison\b`,
			},
		},
		Categories: []string{"astro-ph.SR", "astro-ph.EP"},
		Weights:    defaultWeights,
	}
}
