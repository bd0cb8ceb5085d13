package generation

// Known report section types returned by the outline call. Anything else
// falls back to a generic bullet list.
const (
	SectionTitle        = "title"
	SectionNarrative    = "narrative"
	SectionKeyDrivers   = "key_drivers"
	SectionDependencies = "dependencies"
	SectionRisks        = "risks"
	SectionInsights     = "insights"
)

// OutlineEntry is one typed section descriptor from the outline call.
type OutlineEntry struct {
	Type    string `json:"type"`
	Heading string `json:"heading"`
}

// Section is a fully expanded report section.
type Section struct {
	Type    string   `json:"type"`
	Heading string   `json:"heading"`
	Content string   `json:"content,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// instructionFor selects the type-specific expansion instruction for an
// outline entry.
func instructionFor(sectionType string) string {
	switch sectionType {
	case SectionTitle:
		return "Write a one-line title for the report followed by a short two-sentence introduction in \"content\"."
	case SectionNarrative:
		return "Write two to three flowing paragraphs in \"content\" telling the story behind the timeline: what happens first, what follows, and how the workstreams relate over time."
	case SectionKeyDrivers:
		return "List in \"bullets\" the key drivers behind the plan: the forces, goals or constraints that shaped the sequencing of the timeline."
	case SectionDependencies:
		return "List in \"bullets\" the dependencies between activities: which items block or feed into which, and any external prerequisites."
	case SectionRisks:
		return "List in \"bullets\" the main risks to the timeline, each with a short note on impact and likelihood."
	case SectionInsights:
		return "List in \"bullets\" non-obvious insights a reader should take away from the chart: patterns, concentrations of effort, or timing conflicts."
	default:
		return "Summarize this section as a concise bullet list in \"bullets\"."
	}
}
