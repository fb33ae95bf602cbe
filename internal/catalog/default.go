package catalog

import "github.com/pkordes/dragon-paving/internal/domain"

// Icon names understood by the view templates.
const (
	IconLayers = "layers"
	IconHammer = "hammer"
	IconShield = "shield"
)

// Default returns the Dragon Paving service catalog.
func Default() *Catalog {
	c, err := New(defaultServices()...)
	if err != nil {
		// The records below are fixed; a failure here is a programming error.
		panic(err)
	}
	return c
}

func defaultServices() []domain.Service {
	return []domain.Service{
		{
			Slug:  "asphalt-paving",
			Title: "Asphalt Paving",
			Icon:  IconLayers,
			Points: []string{
				"Parking lots, private roads, and access lanes",
				"New installs, overlays, patching",
				"Proper base prep for long life",
			},
			LongIntro: "From new construction to overlays and repairs, our asphalt paving focuses on solid prep, clean edges, and smooth finishes built for commercial traffic.",
			Scope: []string{
				"Site measurement + layout",
				"Base evaluation and recommendations",
				"Patching, overlays, or full replacement",
				"Final roll + edge work",
			},
			Checklist: []string{
				"Base condition and soft spots",
				"Drainage and slope for runoff",
				"Thickness requirements for traffic",
				"Access and staging for equipment",
			},
		},
		{
			Slug:  "asphalt-milling",
			Title: "Asphalt Milling",
			Icon:  IconLayers,
			Points: []string{
				"Remove damaged asphalt layers cleanly",
				"Correct elevations and improve drainage",
				"Ideal preparation for overlays and repaving",
			},
			LongIntro: "Milling removes failed asphalt and can correct grades before repaving. It’s a cost-effective way to prep commercial lots and improve drainage.",
			Scope: []string{
				"Milling to specified depth",
				"Haul-off or reuse (as specified)",
				"Grade checks",
				"Prep for overlay/repave",
			},
			Checklist: []string{
				"Target depth and transitions",
				"Drainage corrections needed",
				"Tie-ins at sidewalks/curbs",
				"Access and traffic control plan",
			},
		},
		{
			Slug:  "concrete",
			Title: "Concrete Services",
			Icon:  IconHammer,
			Points: []string{
				"Foundations, footings, and curbing",
				"Sidewalks and pads",
				"Professional forming, finishing, and cleanup",
			},
			LongIntro: "Concrete work that supports commercial sites—foundations, footings, curbing, pads, and sidewalks with clean forming and durable finishes.",
			Scope: []string{
				"Forming + reinforcement (as needed)",
				"Pour + finishing",
				"Curing guidance",
				"Cleanup + final walkthrough",
			},
			Checklist: []string{
				"Subgrade prep and compaction",
				"Rebar/dowel needs",
				"Joints and layout",
				"Cure time and access limits",
			},
		},
		{
			Slug:  "sealcoating-maintenance",
			Title: "Sealcoating & Maintenance",
			Icon:  IconShield,
			Points: []string{
				"Sealcoating to extend asphalt life",
				"Crack filling and surface protection",
				"Ongoing maintenance programs",
			},
			LongIntro: "Sealcoating and maintenance services protect asphalt from water, sun, and traffic wear while improving appearance and extending pavement life.",
			Scope: []string{
				"Surface cleaning and preparation",
				"Crack filling as needed",
				"Sealcoat application",
				"Cure time coordination",
			},
			Checklist: []string{
				"Surface condition",
				"Weather window",
				"Traffic control",
				"Cure timing",
			},
		},
		{
			Slug:  "site-excavation-grading",
			Title: "Site Excavation & Grading",
			Icon:  IconHammer,
			Points: []string{
				"Site clearing and earthwork",
				"Rough and fine grading",
				"Pad prep for asphalt and concrete",
			},
			LongIntro: "Professional site excavation and grading to prepare commercial properties for paving and concrete. Accurate elevations, drainage control, and stable subgrades.",
			Scope: []string{
				"Clearing and stripping",
				"Cut and fill operations",
				"Rough and fine grading",
				"Compaction and proof rolling",
			},
			Checklist: []string{
				"Soil conditions",
				"Drainage paths and elevations",
				"Access for equipment",
				"Coordination with paving and concrete",
			},
		},
	}
}
