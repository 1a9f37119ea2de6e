// Package ioquery implements the Querier interface on top of GORM.
package ioquery

import (
	"context"
	"strings"

	"github.com/gnames/datablock/pkg/lifecycle"
	"github.com/gnames/datablock/pkg/schema"
	"gorm.io/gorm"
)

// fullGraph lists the associations of a company down to the leaves.
// Intermediate lists are named too, so they get ordered as well.
var fullGraph = []string{
	"CompanyInfo.IndustryCodes",
	"CompanyInfo.TradeStyleNames",
	"CompanyInfo.MultilingualNames",
	"CompanyInfo.WebsiteAddresses",
	"CompanyInfo.TelephoneNumbers",
	"CompanyInfo.EmailAddresses",
	"CompanyInfo.RegistrationNumbers",
	"CompanyInfo.StockExchanges",
	"CompanyInfo.Banks",
	"CompanyInfo.CompanyActivities",
	"CompanyInfo.EmployeeFigures",
	"CompanyInfo.UNSPSCCodes",

	"LegalEventsSummary",
	"LegalEvents",
	"LegalEvents.Filings",
	"LegalEvents.Filings.RolePlayers",
	"LegalEvents.Filings.ReferenceDates",
	"LegalEvents.Filings.TextEntries",

	"AwardsSummary",
	"Contracts",
	"Contracts.Actions",
	"Contracts.Characteristics",

	"ExclusionsSummary",
	"ActiveExclusions",
	"InactiveExclusions",

	"SignificantEventsSummary",
	"SignificantEvents",
	"SignificantEvents.TextEntries",

	"FinancingEventsSummary",
	"FinancingEvents",
	"FinancingEvents.Filings",

	"ViolationsSummary",
	"Violations",

	"FinancialStatements",
	"FinancialStatements.Overview",
	"FinancialStatements.BalanceSheetItems",
	"FinancialStatements.ProfitLossItems",
	"FinancialStatements.CashFlowItems",
	"FinancialStatements.FinancialRatios",
}

type querier struct {
	db *gorm.DB
}

// New creates a Querier that reads from db.
func New(db *gorm.DB) lifecycle.Querier {
	return &querier{db: db}
}

// unordered are the associations of at most one row per parent, or of
// rows without a display order.
var unordered = map[string]bool{
	"CompanyInfo":                  true,
	"LegalEventsSummary":           true,
	"LegalEvents":                  true,
	"AwardsSummary":                true,
	"ExclusionsSummary":            true,
	"SignificantEventsSummary":     true,
	"FinancingEventsSummary":       true,
	"ViolationsSummary":            true,
	"FinancialStatements.Overview": true,
}

// byID keeps rows in the order they were inserted.
func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// byPriority orders repeated rows the way the source document listed
// them.
func byPriority(db *gorm.DB) *gorm.DB {
	return db.Order("priority").Order("id")
}

func preloadAll(db *gorm.DB) *gorm.DB {
	for _, p := range fullGraph {
		if unordered[p] {
			db = db.Preload(p, byID)
			continue
		}
		db = db.Preload(p, byPriority)
	}
	return db
}

// CompanyByDUNS implements lifecycle.Querier.
func (q *querier) CompanyByDUNS(
	ctx context.Context,
	duns string,
) (*schema.Company, error) {
	var res schema.Company
	err := preloadAll(q.db.WithContext(ctx)).
		Where("duns = ?", duns).
		Limit(1).
		Find(&res).Error
	if err != nil {
		return nil, QueryError("company", err)
	}
	if res.ID == 0 {
		return nil, NotFoundError(duns)
	}
	return &res, nil
}

// ListCompanies implements lifecycle.Querier.
func (q *querier) ListCompanies(
	ctx context.Context,
	f lifecycle.Filter,
) ([]schema.Company, error) {
	f = f.Normalize()
	db := q.db.WithContext(ctx).Model(&schema.Company{})

	if f.Country != "" {
		db = db.Where("country_iso_alpha2_code = ?", strings.ToUpper(f.Country))
	}
	if f.Name != "" {
		db = db.Where("LOWER(primary_name) LIKE ?",
			"%"+strings.ToLower(f.Name)+"%")
	}
	if f.Group != "" {
		db = db.Where(groupCondition(f.Group))
	}
	if f.Full {
		db = preloadAll(db)
	}

	var res []schema.Company
	err := db.Order("duns").Limit(f.Limit).Offset(f.Offset).Find(&res).Error
	if err != nil {
		return nil, QueryError("companies", err)
	}
	return res, nil
}

// ParseGroup converts a command line value to a detail group.
func ParseGroup(s string) (schema.Group, error) {
	if g, ok := schema.ParseGroup(s); ok {
		return g, nil
	}
	var known []string
	for _, g := range schema.Groups() {
		known = append(known, string(g))
	}
	return "", UnknownGroupError(s, known)
}

// groupCondition selects companies that own at least one top-level row
// of the group.
func groupCondition(g schema.Group) string {
	nodes := schema.Ownership(g)
	if len(nodes) == 0 {
		return "1 = 0"
	}

	conds := make([]string, 0, len(nodes))
	for _, n := range nodes {
		conds = append(conds, "EXISTS (SELECT 1 FROM "+n.Table+
			" WHERE "+n.Table+"."+n.FK+" = companies.id)")
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// Counts implements lifecycle.Querier.
func (q *querier) Counts(
	ctx context.Context,
	duns string,
) (map[string]int64, error) {
	db := q.db.WithContext(ctx)

	var c schema.Company
	if err := db.Where("duns = ?", duns).Limit(1).Find(&c).Error; err != nil {
		return nil, QueryError("company", err)
	}
	if c.ID == 0 {
		return nil, NotFoundError(duns)
	}

	res := map[string]int64{"companies": 1}
	for _, g := range schema.Groups() {
		err := schema.Walk(schema.Ownership(g), func(n schema.Node, where string) error {
			var cnt int64
			if err := db.Table(n.Table).Where(where, c.ID).Count(&cnt).Error; err != nil {
				return QueryError(n.Table, err)
			}
			res[n.Table] = cnt
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	var docs int64
	err := db.Model(&schema.SourceDocument{}).Where("company_id = ?", c.ID).Count(&docs).Error
	if err != nil {
		return nil, QueryError("source_documents", err)
	}
	res["source_documents"] = docs
	return res, nil
}
