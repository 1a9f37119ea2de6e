package schema

// Node is a table in the ownership tree of a detail group. Every row of
// the table belongs to exactly one row of the parent table through FK.
type Node struct {
	Table string
	// FK is the column that references the parent row. For top-level
	// tables the parent is companies.
	FK       string
	Children []Node
}

func leaf(table, fk string) Node {
	return Node{Table: table, FK: fk}
}

var ownership = map[Group][]Node{
	GroupCompanyInfo: {
		{Table: "company_info", FK: "company_id", Children: []Node{
			leaf("industry_codes", "company_info_id"),
			leaf("trade_style_names", "company_info_id"),
			leaf("multilingual_names", "company_info_id"),
			leaf("website_addresses", "company_info_id"),
			leaf("telephone_numbers", "company_info_id"),
			leaf("email_addresses", "company_info_id"),
			leaf("registration_numbers", "company_info_id"),
			leaf("stock_exchanges", "company_info_id"),
			leaf("banks", "company_info_id"),
			leaf("company_activities", "company_info_id"),
			leaf("employee_figures", "company_info_id"),
			leaf("unspsc_codes", "company_info_id"),
		}},
	},
	GroupLegalEvents: {
		leaf("legal_events_summaries", "company_id"),
		{Table: "legal_events", FK: "company_id", Children: []Node{
			{Table: "legal_event_filings", FK: "legal_event_id", Children: []Node{
				leaf("filing_role_players", "legal_event_filing_id"),
				leaf("filing_reference_dates", "legal_event_filing_id"),
				leaf("filing_text_entries", "legal_event_filing_id"),
			}},
		}},
	},
	GroupAwards: {
		leaf("awards_summaries", "company_id"),
		{Table: "contracts", FK: "company_id", Children: []Node{
			leaf("contract_actions", "contract_id"),
			leaf("contract_characteristics", "contract_id"),
		}},
	},
	GroupExclusions: {
		leaf("exclusions_summaries", "company_id"),
		leaf("active_exclusions", "company_id"),
		leaf("inactive_exclusions", "company_id"),
	},
	GroupSignificantEvents: {
		leaf("significant_events_summaries", "company_id"),
		{Table: "significant_events", FK: "company_id", Children: []Node{
			leaf("significant_event_text_entries", "significant_event_id"),
		}},
	},
	GroupFinancingEvents: {
		leaf("financing_events_summaries", "company_id"),
		{Table: "financing_events", FK: "company_id", Children: []Node{
			leaf("financing_event_filings", "financing_event_id"),
		}},
	},
	GroupViolations: {
		leaf("violations_summaries", "company_id"),
		leaf("violations", "company_id"),
	},
	GroupFinancials: {
		{Table: "financial_statements", FK: "company_id", Children: []Node{
			leaf("financial_overviews", "financial_statement_id"),
			leaf("balance_sheet_items", "financial_statement_id"),
			leaf("profit_loss_items", "financial_statement_id"),
			leaf("cash_flow_items", "financial_statement_id"),
			leaf("financial_ratios", "financial_statement_id"),
		}},
	},
}

// Ownership returns top-level tables of a group with their descendants.
func Ownership(g Group) []Node {
	return ownership[g]
}

// Walk calls fn for every node of the tree, parents before children.
// The where argument is an SQL condition with one placeholder for the
// company ID that selects the rows of the node's table owned by the
// company.
func Walk(nodes []Node, fn func(n Node, where string) error) error {
	for _, n := range nodes {
		if err := walk(n, n.FK+" = ?", fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(n Node, where string, fn func(Node, string) error) error {
	if err := fn(n, where); err != nil {
		return err
	}
	ids := "SELECT id FROM " + n.Table + " WHERE " + where
	for _, c := range n.Children {
		if err := walk(c, c.FK+" IN ("+ids+")", fn); err != nil {
			return err
		}
	}
	return nil
}
