package schema

// HarmonizedFunctions is the closed set of functional-use categories a
// QSUR prediction can assign to a chemical.
var HarmonizedFunctions = []string{
	"additive",
	"adhesion_promoter",
	"antimicrobial",
	"antioxidant",
	"antistatic_agent",
	"buffer",
	"catalyst",
	"chelator",
	"cleaning_agent",
	"colorant",
	"crosslinker",
	"emollient",
	"emulsifier",
	"emulsion_stabilizer",
	"flame_retardant",
	"flavorant",
	"foamer",
	"fragrance",
	"hair_conditioner",
	"hair_dye",
	"heat_stabilizer",
	"humectant",
	"lubricant",
	"monomer",
	"organic_pigment",
	"oxidizer",
	"photoinitiator",
	"preservative",
	"reducer",
	"rheology_modifier",
	"skin_conditioner",
	"skin_protectant",
	"soluble_dye",
	"surfactant",
	"uv_absorber",
	"wetting_agent",
}

// ListPresenceKinds classifies entries in list_presence_dictionary
var ListPresenceKinds = []string{
	"general_use",
	"location",
	"manufacturing",
	"media",
	"modifier",
	"pharmaceutical",
	"prevalence",
	"specialty_list",
	"subpopulation",
	"PUC",
}

// CurationLevels flags chemical_dictionary rows as curated or
// provisional/review.
var CurationLevels = []string{"C", "PR"}

// Classifications tiers product composition records: mixture, article,
// or provisional.
var Classifications = []string{"MA", "MB", "PR"}

// PUCKinds flags PUC_dictionary rows as formulation, article, or other
var PUCKinds = []string{"F", "A", "O"}
