package domain

import "time"

type TermCategory string

const (
	CategoryPromiseWord        TermCategory = "promise_word"
	CategoryLifecycleVerb      TermCategory = "lifecycle_verb"
	CategoryFinancialStrategic TermCategory = "financial_strategic"
	CategoryStatusLabel        TermCategory = "status_label"
	CategoryOwnershipTerm      TermCategory = "ownership_term"
	CategoryGeneral            TermCategory = "general"
)

type DefinitionQuality string

const (
	DefinitionComplete DefinitionQuality = "complete"
	DefinitionPartial  DefinitionQuality = "partial"
	DefinitionMinimal  DefinitionQuality = "minimal"
	DefinitionMissing  DefinitionQuality = "missing"
)

// TermOccurrence is a single catalog-term hit inside one document, with a
// context window taken from the original-case text.
type TermOccurrence struct {
	Term         string `json:"term"`
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
	Context      string `json:"context"`
}

// TermAnalysis is the per-term record combining occurrence data, definition
// detection and the cross-document consistency verdict.
type TermAnalysis struct {
	Term                  string            `json:"term"`
	Category              TermCategory      `json:"category"`
	RiskMultiplier        float64           `json:"risk_multiplier"`
	OccurrenceCount       int               `json:"occurrence_count"`
	DocumentNames         []string          `json:"document_names"`
	IsDefined             bool              `json:"is_defined"`
	DefinitionQuality     DefinitionQuality `json:"definition_quality"`
	DefinitionText        string            `json:"definition_text,omitempty"`
	HasThreshold          bool              `json:"has_threshold"`
	HasBoundary           bool              `json:"has_boundary"`
	SampleContexts        []string          `json:"sample_contexts"`
	InconsistencyDetected bool              `json:"inconsistency_detected"`
}

// ComponentResult is one of the six weighted scorer outputs.
type ComponentResult struct {
	Name          string             `json:"name"`
	Score         float64            `json:"score"`
	Weight        float64            `json:"weight"`
	WeightedScore float64            `json:"weighted_score"`
	Details       map[string]float64 `json:"details"`
}

type ScoreBand string

const (
	BandExcellent ScoreBand = "excellent"
	BandGood      ScoreBand = "good"
	BandAtRisk    ScoreBand = "at_risk"
	BandPoor      ScoreBand = "poor"
	BandCritical  ScoreBand = "critical"
)

// AspireScores is the six-dimension maturity breakdown derived from term
// categories. Prospecting and Relationship share the promise-word source.
type AspireScores struct {
	Alignment    float64 `json:"alignment"`
	Strategy     float64 `json:"strategy"`
	Prospecting  float64 `json:"prospecting"`
	Integration  float64 `json:"integration"`
	Relationship float64 `json:"relationship"`
	Engagement   float64 `json:"engagement"`
}

type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
)

type RiskIssue string

const (
	IssueUndefined                RiskIssue = "undefined"
	IssueInconsistentMeaning      RiskIssue = "inconsistent_meaning"
	IssueUndefinedAndInconsistent RiskIssue = "undefined_and_inconsistent"
	IssueHighFrequencyUndefined   RiskIssue = "high_frequency_undefined"
)

type RiskTerm struct {
	Term            string       `json:"term"`
	RiskLevel       RiskLevel    `json:"risk_level"`
	Category        TermCategory `json:"category"`
	OccurrenceCount int          `json:"occurrence_count"`
	DocumentNames   []string     `json:"document_names"`
	Issue           RiskIssue    `json:"issue"`
	Recommendation  string       `json:"recommendation"`
	ExampleContexts []string     `json:"example_contexts"`
}

// CostEstimate is the annual meaning-debt range in whole currency units.
type CostEstimate struct {
	LowEstimate  int            `json:"low_estimate"`
	HighEstimate int            `json:"high_estimate"`
	Breakdown    map[string]int `json:"breakdown"`
}

type ActionPriority string

const (
	PriorityQuickWin    ActionPriority = "quick_win"
	PriorityHighImpact  ActionPriority = "high_impact"
	PrioritySystemic    ActionPriority = "systemic"
	PriorityMaintenance ActionPriority = "maintenance"
)

type ActionItem struct {
	Priority  ActionPriority `json:"priority"`
	Action    string         `json:"action"`
	Rationale string         `json:"rationale"`
}

// AnalysisRequest is the engine invocation contract. CompanySize and the
// consistency flag are resolved to their defaults at the transport boundary;
// the engine still falls back to a 50-person company when size is unset.
type AnalysisRequest struct {
	Documents           []InputDocument `json:"documents"`
	CompanySize         int             `json:"company_size"`
	UseConsistencyCheck bool            `json:"use_consistency_check"`
}

// AnalysisResult is the full audit output.
type AnalysisResult struct {
	OverallScore  float64           `json:"overall_score"`
	Band          ScoreBand         `json:"band"`
	Components    []ComponentResult `json:"components"`
	Aspire        AspireScores      `json:"aspire"`
	RiskTerms     []RiskTerm        `json:"risk_terms"`
	MeaningDebt   CostEstimate      `json:"meaning_debt"`
	ActionPlan    []ActionItem      `json:"action_plan"`
	TermAnalyses  []TermAnalysis    `json:"term_analyses"`
	DocumentCount int               `json:"document_count"`
	WordCount     int               `json:"word_count"`
	GeneratedAt   time.Time         `json:"generated_at"`
}
