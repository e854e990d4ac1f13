package lexicon

// defaultSpec is the built-in catalog: high-stakes business terms grouped by
// category, plus the boundary-signal, vague-language and ownership pattern
// lists the scorers run against.
func defaultSpec() Spec {
	spec := Spec{
		Terms: map[string][]string{
			"promise_word": {
				"support",
				"unlimited",
				"comprehensive",
				"guarantee",
				"guaranteed",
				"seamless",
				"end-to-end",
				"turnkey",
				"white-glove",
				"dedicated",
				"24/7",
				"proactive",
				"premium",
				"world-class",
				"best-in-class",
				"enterprise-grade",
				"reliable",
				"responsive",
				"scalable",
				"robust",
				"flexible",
				"custom",
				"tailored",
				"full service",
				"all-inclusive",
				"on-demand",
				"real-time",
				"instant",
				"always available",
				"priority support",
			},
			"lifecycle_verb": {
				"onboard",
				"onboarding",
				"implement",
				"implementation",
				"deploy",
				"deployment",
				"migrate",
				"migration",
				"launch",
				"integrate",
				"integration",
				"deliver",
				"delivery",
				"finalize",
				"transition",
				"roll out",
				"rollout",
				"go live",
				"go-live",
				"hand off",
				"handoff",
				"kick off",
				"kickoff",
				"ramp up",
				"escalate",
				"escalation",
				"renew",
				"renewal",
				"sunset",
				"decommission",
			},
			"financial_strategic": {
				"roi",
				"revenue",
				"growth",
				"value",
				"savings",
				"cost reduction",
				"margin",
				"pipeline",
				"churn",
				"retention",
				"ltv",
				"cac",
				"arr",
				"mrr",
				"run rate",
				"budget",
				"forecast",
				"quota",
				"upside",
				"synergy",
				"efficiency",
				"productivity",
				"market share",
				"competitive advantage",
				"strategic",
			},
			"status_label": {
				"done",
				"complete",
				"completed",
				"in progress",
				"blocked",
				"pending",
				"on track",
				"at risk",
				"delayed",
				"approved",
				"finalized",
				"live",
				"active",
				"closed",
				"resolved",
				"qualified",
				"ready",
				"on hold",
				"validated",
				"signed off",
				"shipped",
				"launched",
			},
			"ownership_term": {
				"owner",
				"ownership",
				"responsible",
				"accountable",
				"accountability",
				"stakeholder",
				"point of contact",
				"lead",
				"assigned",
				"driver",
				"sponsor",
				"dri",
				"escalation path",
				"decision maker",
				"approver",
				"delegate",
				"team lead",
				"project manager",
			},
			"general": {
				"process",
				"system",
				"solution",
				"platform",
				"service",
				"quality",
				"success",
				"alignment",
				"engagement",
				"partnership",
				"strategy",
				"workflow",
				"framework",
				"initiative",
				"deliverable",
				"milestone",
				"scope",
				"requirement",
				"roadmap",
				"best practice",
				"optimization",
				"stakeholders",
				"collaboration",
				"transformation",
				"innovation",
			},
		},
	}

	spec.Signals.Limit = []string{
		"up to",
		"maximum",
		"minimum",
		"at least",
		"at most",
		"no more than",
		"not to exceed",
		"capped at",
		"limit of",
		"limited to",
		"per month",
		"per week",
		"per day",
		"per year",
		"per user",
		"per incident",
		"within",
		"hours",
		"days",
		"business days",
		"percent",
		"%",
	}
	spec.Signals.Exclusion = []string{
		"excluding",
		"excludes",
		"except",
		"exception",
		"does not include",
		"not included",
		"not covered",
		"outside of",
		"other than",
		"out of scope",
		"does not cover",
	}
	spec.Signals.Inclusion = []string{
		"including",
		"includes",
		"included",
		"consists of",
		"consisting of",
		"covers",
		"covered",
		"specifically",
		"in scope",
		"comprised of",
	}

	spec.Patterns.Vague = []string{
		`\breasonable\b`,
		`\bas needed\b`,
		`\bas required\b`,
		`\bas appropriate\b`,
		`\bas necessary\b`,
		`\btimely\b`,
		`\bpromptly\b`,
		`\bbest effort(?:s)?\b`,
		`\bcommercially reasonable\b`,
		`\bindustry[- ]standard\b`,
		`\bperiodically\b`,
		`\bregularly\b`,
		`\bfrom time to time\b`,
		`\bwhen necessary\b`,
		`\bwhere possible\b`,
		`\bif needed\b`,
		`\bgenerally\b`,
		`\btypically\b`,
		`\bongoing\b`,
		`\bappropriate\b`,
		`\bsufficient\b`,
		`\badequate\b`,
		`\bsoon\b`,
		`\bquickly\b`,
		`\betc\b`,
		`\band so on\b`,
	}
	spec.Patterns.Promise = []string{
		`\bwill\b`,
		`\bshall\b`,
		`\bprovides?\b`,
		`\bprovided\b`,
		`\bguarantees?\b`,
		`\bguaranteed\b`,
		`\bensures?\b`,
		`\bdelivers?\b`,
		`\bunlimited\b`,
		`\bcomprehensive\b`,
		`\balways\b`,
		`\bevery\b`,
		`\ball\b`,
		`\bany\s?time\b`,
		`\bfully\b`,
		`\bcompletely\b`,
		`\bend-to-end\b`,
		`\bseamless(?:ly)?\b`,
	}
	spec.Patterns.OwnershipClear = []string{
		`\b(?:is|are)\s+responsible\s+for\b`,
		`\bowns\b`,
		`\bowned\s+by\b`,
		`\baccountable\s+for\b`,
		`\bwill\s+own\b`,
		`\bpoint\s+of\s+contact\s+(?:for|is)\b`,
		`\bassigned\s+to\b`,
		`\bescalate\s+to\b`,
	}
	spec.Patterns.OwnershipVague = []string{
		`\b(?:we|they|someone|somebody|the\s+team|our\s+team)\s+will\b`,
		`\bwill\s+be\s+(?:handled|managed|addressed|resolved|taken\s+care\s+of|done)\b`,
		`\bas\s+a\s+team\b`,
		`\btogether\s+we\b`,
		`\bit\s+is\s+expected\b`,
	}
	return spec
}
