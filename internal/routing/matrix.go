package routing

import (
	"strings"

	"marketscore/internal/audit"
)

const routingAlgorithm = "static lookup, no inference"

type matrixKey struct {
	taskType string
	industry IndustryType
}

// routingMatrix is the full static routing table. Regulated rows insert
// compliance review before anything is published; unknown rows are the
// conservative middle ground.
var routingMatrix = map[matrixKey][]string{
	{"content_creation", IndustryRegulated}:  {"research_agent", "content_agent", "compliance_agent", "editor_agent"},
	{"content_creation", IndustryCommercial}: {"research_agent", "content_agent", "editor_agent"},
	{"content_creation", IndustryUnknown}:    {"research_agent", "content_agent", "editor_agent"},

	{"campaign_launch", IndustryRegulated}:  {"research_agent", "content_agent", "compliance_agent", "publishing_agent", "analytics_agent"},
	{"campaign_launch", IndustryCommercial}: {"research_agent", "content_agent", "publishing_agent", "analytics_agent"},
	{"campaign_launch", IndustryUnknown}:    {"research_agent", "content_agent", "publishing_agent"},

	{"seo_optimization", IndustryRegulated}:  {"seo_agent", "content_agent", "compliance_agent"},
	{"seo_optimization", IndustryCommercial}: {"seo_agent", "content_agent"},
	{"seo_optimization", IndustryUnknown}:    {"seo_agent", "content_agent"},

	{"competitor_analysis", IndustryRegulated}:  {"research_agent", "analytics_agent"},
	{"competitor_analysis", IndustryCommercial}: {"research_agent", "analytics_agent"},
	{"competitor_analysis", IndustryUnknown}:    {"research_agent", "analytics_agent"},

	{"ab_testing", IndustryRegulated}:  {"analytics_agent", "compliance_agent", "editor_agent"},
	{"ab_testing", IndustryCommercial}: {"analytics_agent", "editor_agent"},
	{"ab_testing", IndustryUnknown}:    {"analytics_agent"},

	{"social_engagement", IndustryRegulated}:  {"content_agent", "compliance_agent", "publishing_agent"},
	{"social_engagement", IndustryCommercial}: {"content_agent", "publishing_agent"},
	{"social_engagement", IndustryUnknown}:    {"content_agent", "publishing_agent"},
}

// defaultSequence is the final fallback when a task type has no rows at all.
var defaultSequence = []string{"research_agent"}

// Result reports a routing decision with the same audit contract as the
// scorers.
type Result struct {
	audit.Meta

	TaskType      string       `json:"task_type"`
	Industry      IndustryType `json:"industry"`
	AgentSequence []string     `json:"agent_sequence"`
}

// NormalizeTaskType lowercases and maps spaces and hyphens to underscores so
// "Content Creation" and "content-creation" hit the same row.
func NormalizeTaskType(taskType string) string {
	t := strings.ToLower(strings.TrimSpace(taskType))
	t = strings.ReplaceAll(t, " ", "_")
	t = strings.ReplaceAll(t, "-", "_")
	return t
}

// AgentSequence looks up the ordered agent list for a task and industry.
// Lookup order: exact row, the task's unknown-industry row, then the default
// single-agent sequence. The returned slice is a copy.
func AgentSequence(taskType string, industry IndustryType) []string {
	normalized := NormalizeTaskType(taskType)

	if seq, ok := routingMatrix[matrixKey{normalized, industry}]; ok {
		return append([]string(nil), seq...)
	}
	if seq, ok := routingMatrix[matrixKey{normalized, IndustryUnknown}]; ok {
		return append([]string(nil), seq...)
	}
	return append([]string(nil), defaultSequence...)
}

// Info classifies the context and resolves the agent sequence in one call.
func Info(taskType, context string) Result {
	industry := ClassifyIndustry(context)

	return Result{
		Meta:          audit.Verified(routingAlgorithm),
		TaskType:      NormalizeTaskType(taskType),
		Industry:      industry,
		AgentSequence: AgentSequence(taskType, industry),
	}
}
