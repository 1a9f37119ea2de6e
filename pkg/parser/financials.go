package parser

import (
	"github.com/gnames/datablock/pkg/document"
	"github.com/gnames/datablock/pkg/nested"
	"github.com/gnames/datablock/pkg/schema"
)

// Financials converts financial statements of a company. Statements come
// from financials.financialStatements, latestFiscalFinancials and
// otherFinancials, in that order. If none of them is present the document
// produces no generation.
func Financials(doc document.FinancialsDoc) []Generation {
	org := doc.Organization()
	sources := []struct {
		path  []any
		stype string
	}{
		{[]any{"financials", "financialStatements"}, schema.StatementListed},
		{[]any{"latestFiscalFinancials"}, schema.StatementLatestFiscal},
		{[]any{"otherFinancials"}, schema.StatementOther},
	}

	var present bool
	gen := Generation{Group: schema.GroupFinancials}
	for _, src := range sources {
		if !nested.Has(org, src.path...) {
			continue
		}
		present = true
		items, idx := objects(org, src.path...)
		for i, fs := range items {
			if len(fs) == 0 {
				continue
			}
			gen.Rows = append(gen.Rows, statement(fs, src.stype, priority(fs, idx[i])))
		}
	}

	if !present {
		return nil
	}
	return []Generation{gen}
}

func statement(fs map[string]any, stype string, prio int) *schema.FinancialStatement {
	res := &schema.FinancialStatement{
		StatementType: stype,
		Priority:      prio,

		FinancialStatementToDate:   date(fs, "financialStatementToDate"),
		FinancialStatementFromDate: date(fs, "financialStatementFromDate"),
		FinancialStatementDuration: str(fs, "financialStatementDuration"),
		FilingDate:                 date(fs, "filingDate"),
		ReceivedTimestamp:          date(fs, "receivedTimestamp"),
		ApprovalDate:               date(fs, "approvalDate"),
		Currency:                   upper(fs, "currency"),
		Units:                      str(fs, "units"),

		DataProvider:      coded(fs, "dataProvider"),
		StatementTemplate: coded(fs, "statementTemplate"),
		InformationScope:  coded(fs, "informationScope"),
		Reliability:       coded(fs, "reliability"),

		IsFiscal:         nested.Bool(fs, "isFiscal"),
		IsInterim:        nested.Bool(fs, "isInterim"),
		IsAudited:        nested.Bool(fs, "isAudited"),
		IsAuditUnknown:   nested.Bool(fs, "isAuditUnknown"),
		IsFinal:          nested.Bool(fs, "isFinal"),
		IsOpening:        nested.Bool(fs, "isOpening"),
		IsProforma:       nested.Bool(fs, "isProforma"),
		IsSigned:         nested.Bool(fs, "isSigned"),
		IsQualified:      nested.Bool(fs, "isQualified"),
		IsRestated:       nested.Bool(fs, "isRestated"),
		IsTrialBalance:   nested.Bool(fs, "isTrialBalance"),
		IsUnbalanced:     nested.Bool(fs, "isUnbalanced"),
		AccountantName:   str(fs, "accountantName"),
		NotAuditedReason: str(fs, "notAuditedReason"),

		ProfitLossItems: profitLossItems(fs),
		CashFlowItems:   cashFlowItems(fs),
		FinancialRatios: financialRatios(fs),
	}

	if ov := nested.Map(fs, "overview"); len(ov) > 0 {
		res.Overview = overview(ov)
	}

	sections := []struct {
		path    []any
		section string
	}{
		{[]any{"balanceSheet", "assets", "statementItems"}, schema.SectionAssets},
		{[]any{"balanceSheet", "liabilities", "statementItems"}, schema.SectionLiabilities},
		{[]any{"balanceSheet", "statementItems"}, schema.SectionOther},
	}
	for _, s := range sections {
		for _, it := range statementItems(fs, s.path...) {
			res.BalanceSheetItems = append(res.BalanceSheetItems, schema.BalanceSheetItem{
				Section:       s.section,
				StatementItem: it,
			})
		}
	}
	return res
}

func statementItems(fs map[string]any, path ...any) []schema.StatementItem {
	items, idx := objects(fs, path...)
	res := make([]schema.StatementItem, 0, len(items))
	for i, v := range items {
		res = append(res, schema.StatementItem{
			ItemDescription: str(v, "itemKey", "description"),
			ItemDnbCode:     nested.Int(v, "itemKey", "dnbCode"),
			Value:           nested.Float(v, "value"),
			Priority:        priority(v, idx[i]),
			ItemGroupLevel:  nested.Int(v, "itemGroupLevel"),
		})
	}
	return res
}

func profitLossItems(fs map[string]any) []schema.ProfitLossItem {
	items := statementItems(fs, "profitAndLossStatement", "statementItems")
	res := make([]schema.ProfitLossItem, 0, len(items))
	for _, it := range items {
		res = append(res, schema.ProfitLossItem{StatementItem: it})
	}
	return res
}

func cashFlowItems(fs map[string]any) []schema.CashFlowItem {
	items := statementItems(fs, "cashFlowStatement", "statementItems")
	res := make([]schema.CashFlowItem, 0, len(items))
	for _, it := range items {
		res = append(res, schema.CashFlowItem{StatementItem: it})
	}
	return res
}

func financialRatios(fs map[string]any) []schema.FinancialRatio {
	items, idx := objects(fs, "financialRatios", "statementItems")
	res := make([]schema.FinancialRatio, 0, len(items))
	for i, v := range items {
		res = append(res, schema.FinancialRatio{
			RatioDescription:     str(v, "itemKey", "description"),
			RatioDnbCode:         nested.Int(v, "itemKey", "dnbCode"),
			Value:                nested.Float(v, "value"),
			RelativeIndustryRank: nested.Float(v, "relativeIndustryRank"),
			Priority:             priority(v, idx[i]),
			ItemGroupLevel:       nested.Int(v, "itemGroupLevel"),
		})
	}
	return res
}

func overview(ov map[string]any) *schema.FinancialOverview {
	f := func(key string) *float64 { return nested.Float(ov, key) }
	return &schema.FinancialOverview{
		CashAndLiquidAssets:      f("cashAndLiquidAssets"),
		MarketableSecurities:     f("marketableSecurities"),
		AccountsReceivable:       f("accountsReceivable"),
		DueFromGroupShortTerm:    f("dueFromGroupShortTerm"),
		OtherReceivables:         f("otherReceivables"),
		TotalReceivables:         f("totalReceivables"),
		Inventory:                f("inventory"),
		PrepaidDeferredShortTerm: f("prepaidDeferredShortTerm"),
		OtherCurrentAssets:       f("otherCurrentAssets"),
		TotalCurrentAssets:       f("totalCurrentAssets"),

		TangibleFixedAssets:     f("tangibleFixedAssets"),
		DueFromGroupLongTerm:    f("dueFromGroupLongTerm"),
		InvestmentsLongTerm:     f("investmentsLongTerm"),
		IntangibleAssets:        f("intangibleAssets"),
		OtherLongTermAssets:     f("otherLongTermAssets"),
		TotalLongTermAssets:     f("totalLongTermAssets"),
		OtherUnclassifiedAssets: f("otherUnclassifiedAssets"),
		TotalAssets:             f("totalAssets"),

		AccountsPayable:         f("accountsPayable"),
		AccrualsOtherPayables:   f("accrualsOtherPayables"),
		ShortTermDebt:           f("shortTermDebt"),
		DueToGroupShortTerm:     f("dueToGroupShortTerm"),
		TaxesShortTerm:          f("taxesShortTerm"),
		OtherCurrentLiabilities: f("otherCurrentLiabilities"),
		TotalCurrentLiabilities: f("totalCurrentLiabilities"),

		LongTermDebt:                 f("longTermDebt"),
		DueToGroupLongTerm:           f("dueToGroupLongTerm"),
		DeferredCreditIncome:         f("deferredCreditIncome"),
		DeferredTaxesLongTerm:        f("deferredTaxesLongTerm"),
		OtherLongTermLiabilities:     f("otherLongTermLiabilities"),
		TotalLongTermLiabilities:     f("totalLongTermLiabilities"),
		Provisions:                   f("provisions"),
		OtherUnclassifiedLiabilities: f("otherUnclassifiedLiabilities"),
		TotalLiabilities:             f("totalLiabilities"),

		CapitalStock:              f("capitalStock"),
		CapitalSurplus:            f("capitalSurplus"),
		RetainedEarnings:          f("retainedEarnings"),
		CapitalReserves:           f("capitalReserves"),
		OtherUnrestrictedReserves: f("otherUnrestrictedReserves"),
		RestrictedEquity:          f("restrictedEquity"),
		OtherEquity:               f("otherEquity"),
		MinorityInterest:          f("minorityInterest"),
		NetWorth:                  f("netWorth"),
		TotalLiabilitiesEquity:    f("totalLiabilitiesEquity"),

		SalesRevenue:      f("salesRevenue"),
		CostOfSales:       f("costOfSales"),
		GrossProfit:       f("grossProfit"),
		OperatingProfit:   f("operatingProfit"),
		ProfitBeforeTaxes: f("profitBeforeTaxes"),
		ProfitAfterTax:    f("profitAfterTax"),
		Dividends:         f("dividends"),

		TotalIndebtedness: f("totalIndebtedness"),
		WorkingCapital:    f("workingCapital"),
		NetCurrentAssets:  f("netCurrentAssets"),
		TangibleNetWorth:  f("tangibleNetWorth"),

		CurrentRatio:                   f("currentRatio"),
		QuickRatio:                     f("quickRatio"),
		CurrentLiabilitiesOverNetWorth: f("currentLiabilitiesOverNetWorth"),
		TotalLiabilitiesOverNetWorth:   f("totalLiabilitiesOverNetWorth"),
	}
}
