package entities

// ProjectType identifies the structure being waterproofed.
//
// Domain notes:
//   - The type is informational for the pricing engine; area, access and
//     material drive the math. It still matters for the AI analysis prompt
//     and for filtering saved estimates.

type ProjectType string

const (
	ProjectTypeFlatRoof       ProjectType = "flat_roof"
	ProjectTypeFoundationWall ProjectType = "foundation_wall"
	ProjectTypeParkingDeck    ProjectType = "parking_deck"
	ProjectTypeElevatorPit    ProjectType = "elevator_pit"
	ProjectTypeBelowGrade     ProjectType = "below_grade"
	ProjectTypePlazaDeck      ProjectType = "plaza_deck"
	ProjectTypeTunnel         ProjectType = "tunnel"
	ProjectTypeRetainingWall  ProjectType = "retaining_wall"
)

// Material is the waterproofing system applied to the structure. Each
// material has a fixed per-square-foot rate in the pricing tables;
// unrecognized values price at the default rate instead of failing.

type Material string

const (
	MaterialLiquidMembrane     Material = "liquid_membrane"
	MaterialHotAppliedAsphalt  Material = "hot_applied_rubberized_asphalt"
	MaterialSheetMembrane      Material = "sheet_membrane"
	MaterialBentonite          Material = "bentonite"
	MaterialCrystalline        Material = "crystalline"
	MaterialEpoxyInjection     Material = "epoxy_injection"
	MaterialPolyurethane       Material = "polyurethane"
	MaterialModifiedBitumen    Material = "modified_bitumen"
)

// AccessCondition scales labor hours and equipment cost.

type AccessCondition string

const (
	AccessEasy             AccessCondition = "easy"
	AccessRestricted       AccessCondition = "restricted"
	AccessLiftScaffolding  AccessCondition = "requires_lift_scaffolding"
	AccessConfinedSpace    AccessCondition = "confined_space"
	AccessHighElevation    AccessCondition = "high_elevation"
)

// UrgencyLevel only affects the markup rate, never the hours.

type UrgencyLevel string

const (
	UrgencyStandard  UrgencyLevel = "standard"
	UrgencyRush      UrgencyLevel = "rush"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// ProjectConfig is the user-supplied project intake, immutable once the
// estimate is created. LaborRate is currency per hour. ZipCode, ClientName,
// ProjectName and Notes are informational only.
type ProjectConfig struct {
	ProjectType      ProjectType     `json:"project_type"`
	BuildingType     string          `json:"building_type"`
	Material         Material        `json:"waterproofing_material"`
	AccessConditions AccessCondition `json:"access_conditions"`
	UrgencyLevel     UrgencyLevel    `json:"urgency_level"`
	LaborRate        float64         `json:"labor_rate"`
	ZipCode          string          `json:"zip_code"`
	ClientName       string          `json:"client_name"`
	ProjectName      string          `json:"project_name"`
	Notes            string          `json:"notes"`
}
