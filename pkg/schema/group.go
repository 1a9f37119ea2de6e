package schema

// Group is a detail group: a set of tables owned by a company that is
// replaced as a unit when a document is reloaded.
type Group string

const (
	GroupCompanyInfo       Group = "company_info"
	GroupLegalEvents       Group = "legal_events"
	GroupAwards            Group = "awards"
	GroupExclusions        Group = "exclusions"
	GroupSignificantEvents Group = "significant_events"
	GroupFinancingEvents   Group = "financing_events"
	GroupViolations        Group = "violations"
	GroupFinancials        Group = "financials"
)

// Groups returns all detail groups in a stable order.
func Groups() []Group {
	return []Group{
		GroupCompanyInfo,
		GroupLegalEvents,
		GroupAwards,
		GroupExclusions,
		GroupSignificantEvents,
		GroupFinancingEvents,
		GroupViolations,
		GroupFinancials,
	}
}

// ParseGroup converts a string to a Group.
func ParseGroup(s string) (Group, bool) {
	for _, g := range Groups() {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// Row is a top-level row of a detail group. Its children are reached
// through its association fields.
type Row interface {
	TableName() string
	SetCompanyID(uint)
}
