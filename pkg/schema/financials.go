package schema

import (
	"time"
)

// Statement types stored in FinancialStatement.StatementType.
const (
	StatementLatestFiscal = "fiscal_latest"
	StatementOther        = "other"
	StatementListed       = "statement"
)

// Balance sheet sections stored in BalanceSheetItem.Section.
const (
	SectionAssets      = "assets"
	SectionLiabilities = "liabilities"
	SectionOther       = "other"
)

// FinancialStatement is one reported financial statement of a company.
type FinancialStatement struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"index;not null"`

	StatementType string `gorm:"size:50;not null"`
	Priority      int

	FinancialStatementToDate   *time.Time `gorm:"type:date"`
	FinancialStatementFromDate *time.Time `gorm:"type:date"`
	// FinancialStatementDuration is an ISO 8601 duration such as P12M.
	FinancialStatementDuration *string    `gorm:"size:20"`
	FilingDate                 *time.Time `gorm:"type:date"`
	ReceivedTimestamp          *time.Time `gorm:"type:date"`
	ApprovalDate               *time.Time `gorm:"type:date"`
	Currency                   *string    `gorm:"size:3"`
	Units                      *string    `gorm:"size:50"`

	DataProvider      Coded `gorm:"embedded;embeddedPrefix:data_provider_"`
	StatementTemplate Coded `gorm:"embedded;embeddedPrefix:statement_template_"`
	InformationScope  Coded `gorm:"embedded;embeddedPrefix:information_scope_"`
	Reliability       Coded `gorm:"embedded;embeddedPrefix:reliability_"`

	IsFiscal         *bool
	IsInterim        *bool
	IsAudited        *bool
	IsAuditUnknown   *bool
	IsFinal          *bool
	IsOpening        *bool
	IsProforma       *bool
	IsSigned         *bool
	IsQualified      *bool
	IsRestated       *bool
	IsTrialBalance   *bool
	IsUnbalanced     *bool
	AccountantName   *string `gorm:"size:500"`
	NotAuditedReason *string `gorm:"size:500"`

	Overview          *FinancialOverview `gorm:"constraint:OnDelete:CASCADE"`
	BalanceSheetItems []BalanceSheetItem `gorm:"constraint:OnDelete:CASCADE"`
	ProfitLossItems   []ProfitLossItem   `gorm:"constraint:OnDelete:CASCADE"`
	CashFlowItems     []CashFlowItem     `gorm:"constraint:OnDelete:CASCADE"`
	FinancialRatios   []FinancialRatio   `gorm:"constraint:OnDelete:CASCADE"`
}

func (FinancialStatement) TableName() string       { return "financial_statements" }
func (s *FinancialStatement) SetCompanyID(id uint) { s.CompanyID = id }

// FinancialOverview holds the standardized figures of a statement.
type FinancialOverview struct {
	ID                   uint `gorm:"primaryKey"`
	FinancialStatementID uint `gorm:"uniqueIndex;not null"`

	CashAndLiquidAssets      *float64 `gorm:"type:numeric(20,2)"`
	MarketableSecurities     *float64 `gorm:"type:numeric(20,2)"`
	AccountsReceivable       *float64 `gorm:"type:numeric(20,2)"`
	DueFromGroupShortTerm    *float64 `gorm:"type:numeric(20,2)"`
	OtherReceivables         *float64 `gorm:"type:numeric(20,2)"`
	TotalReceivables         *float64 `gorm:"type:numeric(20,2)"`
	Inventory                *float64 `gorm:"type:numeric(20,2)"`
	PrepaidDeferredShortTerm *float64 `gorm:"type:numeric(20,2)"`
	OtherCurrentAssets       *float64 `gorm:"type:numeric(20,2)"`
	TotalCurrentAssets       *float64 `gorm:"type:numeric(20,2)"`

	TangibleFixedAssets     *float64 `gorm:"type:numeric(20,2)"`
	DueFromGroupLongTerm    *float64 `gorm:"type:numeric(20,2)"`
	InvestmentsLongTerm     *float64 `gorm:"type:numeric(20,2)"`
	IntangibleAssets        *float64 `gorm:"type:numeric(20,2)"`
	OtherLongTermAssets     *float64 `gorm:"type:numeric(20,2)"`
	TotalLongTermAssets     *float64 `gorm:"type:numeric(20,2)"`
	OtherUnclassifiedAssets *float64 `gorm:"type:numeric(20,2)"`
	TotalAssets             *float64 `gorm:"type:numeric(20,2)"`

	AccountsPayable         *float64 `gorm:"type:numeric(20,2)"`
	AccrualsOtherPayables   *float64 `gorm:"type:numeric(20,2)"`
	ShortTermDebt           *float64 `gorm:"type:numeric(20,2)"`
	DueToGroupShortTerm     *float64 `gorm:"type:numeric(20,2)"`
	TaxesShortTerm          *float64 `gorm:"type:numeric(20,2)"`
	OtherCurrentLiabilities *float64 `gorm:"type:numeric(20,2)"`
	TotalCurrentLiabilities *float64 `gorm:"type:numeric(20,2)"`

	LongTermDebt                 *float64 `gorm:"type:numeric(20,2)"`
	DueToGroupLongTerm           *float64 `gorm:"type:numeric(20,2)"`
	DeferredCreditIncome         *float64 `gorm:"type:numeric(20,2)"`
	DeferredTaxesLongTerm        *float64 `gorm:"type:numeric(20,2)"`
	OtherLongTermLiabilities     *float64 `gorm:"type:numeric(20,2)"`
	TotalLongTermLiabilities     *float64 `gorm:"type:numeric(20,2)"`
	Provisions                   *float64 `gorm:"type:numeric(20,2)"`
	OtherUnclassifiedLiabilities *float64 `gorm:"type:numeric(20,2)"`
	TotalLiabilities             *float64 `gorm:"type:numeric(20,2)"`

	CapitalStock              *float64 `gorm:"type:numeric(20,2)"`
	CapitalSurplus            *float64 `gorm:"type:numeric(20,2)"`
	RetainedEarnings          *float64 `gorm:"type:numeric(20,2)"`
	CapitalReserves           *float64 `gorm:"type:numeric(20,2)"`
	OtherUnrestrictedReserves *float64 `gorm:"type:numeric(20,2)"`
	RestrictedEquity          *float64 `gorm:"type:numeric(20,2)"`
	OtherEquity               *float64 `gorm:"type:numeric(20,2)"`
	MinorityInterest          *float64 `gorm:"type:numeric(20,2)"`
	NetWorth                  *float64 `gorm:"type:numeric(20,2)"`
	TotalLiabilitiesEquity    *float64 `gorm:"type:numeric(20,2)"`

	SalesRevenue      *float64 `gorm:"type:numeric(20,2)"`
	CostOfSales       *float64 `gorm:"type:numeric(20,2)"`
	GrossProfit       *float64 `gorm:"type:numeric(20,2)"`
	OperatingProfit   *float64 `gorm:"type:numeric(20,2)"`
	ProfitBeforeTaxes *float64 `gorm:"type:numeric(20,2)"`
	ProfitAfterTax    *float64 `gorm:"type:numeric(20,2)"`
	Dividends         *float64 `gorm:"type:numeric(20,2)"`

	TotalIndebtedness *float64 `gorm:"type:numeric(20,2)"`
	WorkingCapital    *float64 `gorm:"type:numeric(20,2)"`
	NetCurrentAssets  *float64 `gorm:"type:numeric(20,2)"`
	TangibleNetWorth  *float64 `gorm:"type:numeric(20,2)"`

	CurrentRatio                   *float64 `gorm:"type:numeric(10,4)"`
	QuickRatio                     *float64 `gorm:"type:numeric(10,4)"`
	CurrentLiabilitiesOverNetWorth *float64 `gorm:"type:numeric(10,4)"`
	TotalLiabilitiesOverNetWorth   *float64 `gorm:"type:numeric(10,4)"`
}

func (FinancialOverview) TableName() string { return "financial_overviews" }

// StatementItem is a line of a balance sheet, profit and loss or cash flow
// statement.
type StatementItem struct {
	ItemDescription *string `gorm:"size:500"`
	ItemDnbCode     *int
	Value           *float64 `gorm:"type:numeric(20,2)"`
	Priority        int
	// ItemGroupLevel is the depth of the line, 10 for totals and up to 40
	// for details.
	ItemGroupLevel *int
}

type BalanceSheetItem struct {
	ID                   uint   `gorm:"primaryKey"`
	FinancialStatementID uint   `gorm:"index;not null"`
	Section              string `gorm:"size:50;not null"`
	StatementItem        `gorm:"embedded"`
}

func (BalanceSheetItem) TableName() string { return "balance_sheet_items" }

type ProfitLossItem struct {
	ID                   uint `gorm:"primaryKey"`
	FinancialStatementID uint `gorm:"index;not null"`
	StatementItem        `gorm:"embedded"`
}

func (ProfitLossItem) TableName() string { return "profit_loss_items" }

type CashFlowItem struct {
	ID                   uint `gorm:"primaryKey"`
	FinancialStatementID uint `gorm:"index;not null"`
	StatementItem        `gorm:"embedded"`
}

func (CashFlowItem) TableName() string { return "cash_flow_items" }

type FinancialRatio struct {
	ID                   uint `gorm:"primaryKey"`
	FinancialStatementID uint `gorm:"index;not null"`

	RatioDescription     *string `gorm:"size:500"`
	RatioDnbCode         *int
	Value                *float64 `gorm:"type:numeric(20,6)"`
	RelativeIndustryRank *float64 `gorm:"type:numeric(10,4)"`
	Priority             int
	ItemGroupLevel       *int
}

func (FinancialRatio) TableName() string { return "financial_ratios" }
