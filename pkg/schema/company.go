package schema

import (
	"time"
)

// Company is the root entity. There is exactly one row per DUNS. It is
// created on first sight of the DUNS and never deleted by a load.
type Company struct {
	ID uint `gorm:"primaryKey"`

	// DUNS is the 9-digit natural key.
	DUNS string `gorm:"column:duns;size:9;uniqueIndex;not null"`

	// PrimaryName is the latest non-empty name seen in any document.
	PrimaryName *string `gorm:"size:500;index"`

	// CountryISOAlpha2Code is the latest non-empty country code seen.
	CountryISOAlpha2Code *string `gorm:"column:country_iso_alpha2_code;size:2;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// company_info group
	CompanyInfo *CompanyInfo `gorm:"constraint:OnDelete:CASCADE"`

	// legal_events group
	LegalEventsSummary *LegalEventsSummary `gorm:"constraint:OnDelete:CASCADE"`
	LegalEvents        []LegalEvent        `gorm:"constraint:OnDelete:CASCADE"`

	// awards group
	AwardsSummary *AwardsSummary `gorm:"constraint:OnDelete:CASCADE"`
	Contracts     []Contract     `gorm:"constraint:OnDelete:CASCADE"`

	// exclusions group
	ExclusionsSummary  *ExclusionsSummary  `gorm:"constraint:OnDelete:CASCADE"`
	ActiveExclusions   []ActiveExclusion   `gorm:"constraint:OnDelete:CASCADE"`
	InactiveExclusions []InactiveExclusion `gorm:"constraint:OnDelete:CASCADE"`

	// significant_events group
	SignificantEventsSummary *SignificantEventsSummary `gorm:"constraint:OnDelete:CASCADE"`
	SignificantEvents        []SignificantEvent        `gorm:"constraint:OnDelete:CASCADE"`

	// financing_events group
	FinancingEventsSummary *FinancingEventsSummary `gorm:"constraint:OnDelete:CASCADE"`
	FinancingEvents        []FinancingEvent        `gorm:"constraint:OnDelete:CASCADE"`

	// violations group
	ViolationsSummary *ViolationsSummary `gorm:"constraint:OnDelete:CASCADE"`
	Violations        []Violation        `gorm:"constraint:OnDelete:CASCADE"`

	// financials group
	FinancialStatements []FinancialStatement `gorm:"constraint:OnDelete:CASCADE"`
}

func (Company) TableName() string { return "companies" }

// CompanyInfo is the firmographic profile of a company, one row per
// company.
type CompanyInfo struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"uniqueIndex;not null"`

	RegisteredName *string `gorm:"size:500"`

	IsFortune1000Listed          *bool `gorm:"column:is_fortune_1000_listed"`
	IsForbesLargestPrivateListed *bool
	IsNonClassifiedEstablishment *bool
	IsStandalone                 *bool
	IsAgent                      *bool
	IsImporter                   *bool
	IsExporter                   *bool
	IsSmallBusiness              *bool

	BusinessEntityType   Coded      `gorm:"embedded;embeddedPrefix:business_entity_type_"`
	LegalForm            Coded      `gorm:"embedded;embeddedPrefix:legal_form_"`
	LegalFormStartDate   *string    `gorm:"size:20"`
	ControlOwnershipType Coded      `gorm:"embedded;embeddedPrefix:control_ownership_type_"`
	ControlOwnershipDate *time.Time `gorm:"type:date"`

	// Dates that may be partial are kept as received.
	StartDate                 *string    `gorm:"size:20"`
	IncorporatedDate          *time.Time `gorm:"type:date"`
	FiscalYearEnd             *string    `gorm:"size:10"`
	ImperialCalendarStartYear *string    `gorm:"size:10"`

	OperatingStatus          Coded      `gorm:"embedded;embeddedPrefix:operating_status_"`
	OperatingStatusStartDate *time.Time `gorm:"type:date"`
	OperatingSubStatus       Coded      `gorm:"embedded;embeddedPrefix:operating_sub_status_"`
	RecordClass              Coded      `gorm:"embedded;embeddedPrefix:record_class_"`
	FirstReportDate          *time.Time `gorm:"type:date"`
	IsMarketable             *bool
	IsMailUndeliverable      *bool
	IsTelephoneDisconnected  *bool
	IsDelisted               *bool
	IsSelfRequestedDUNS      *bool `gorm:"column:is_self_requested_duns"`

	PrimaryAddress    Address `gorm:"embedded;embeddedPrefix:primary_address_"`
	MailingAddress    Address `gorm:"embedded;embeddedPrefix:mailing_address_"`
	RegisteredAddress Address `gorm:"embedded;embeddedPrefix:registered_address_"`

	PreferredLanguage Coded   `gorm:"embedded;embeddedPrefix:preferred_language_"`
	DefaultCurrency   *string `gorm:"size:3"`

	BusinessTrustIndexScore       *float64 `gorm:"type:numeric(10,2)"`
	BusinessTrustIndexDescription *string  `gorm:"size:200"`

	IndustryCodes       []IndustryCode       `gorm:"constraint:OnDelete:CASCADE"`
	TradeStyleNames     []TradeStyleName     `gorm:"constraint:OnDelete:CASCADE"`
	MultilingualNames   []MultilingualName   `gorm:"constraint:OnDelete:CASCADE"`
	WebsiteAddresses    []WebsiteAddress     `gorm:"constraint:OnDelete:CASCADE"`
	TelephoneNumbers    []TelephoneNumber    `gorm:"constraint:OnDelete:CASCADE"`
	EmailAddresses      []EmailAddress       `gorm:"constraint:OnDelete:CASCADE"`
	RegistrationNumbers []RegistrationNumber `gorm:"constraint:OnDelete:CASCADE"`
	StockExchanges      []StockExchange      `gorm:"constraint:OnDelete:CASCADE"`
	Banks               []Bank               `gorm:"constraint:OnDelete:CASCADE"`
	CompanyActivities   []CompanyActivity    `gorm:"constraint:OnDelete:CASCADE"`
	EmployeeFigures     []EmployeeFigure     `gorm:"constraint:OnDelete:CASCADE"`
	UNSPSCCodes         []UNSPSCCode         `gorm:"foreignKey:CompanyInfoID;constraint:OnDelete:CASCADE"`
}

func (CompanyInfo) TableName() string       { return "company_info" }
func (c *CompanyInfo) SetCompanyID(id uint) { c.CompanyID = id }

type IndustryCode struct {
	ID              uint    `gorm:"primaryKey"`
	CompanyInfoID   uint    `gorm:"index;not null"`
	Code            *string `gorm:"size:50"`
	Description     *string `gorm:"size:500"`
	TypeDescription *string `gorm:"size:200"`
	TypeDnbCode     *int
	Priority        int
}

func (IndustryCode) TableName() string { return "industry_codes" }

type TradeStyleName struct {
	ID            uint   `gorm:"primaryKey"`
	CompanyInfoID uint   `gorm:"index;not null"`
	Name          string `gorm:"size:500;not null"`
	Priority      int
}

func (TradeStyleName) TableName() string { return "trade_style_names" }

type MultilingualName struct {
	ID            uint   `gorm:"primaryKey"`
	CompanyInfoID uint   `gorm:"index;not null"`
	Name          string `gorm:"size:500;not null"`
	// NameType is one of primary, registered or tradestyle.
	NameType      string `gorm:"size:50"`
	Language      Coded  `gorm:"embedded;embeddedPrefix:language_"`
	WritingScript Coded  `gorm:"embedded;embeddedPrefix:writing_script_"`
	Priority      int
}

func (MultilingualName) TableName() string { return "multilingual_names" }

type WebsiteAddress struct {
	ID            uint    `gorm:"primaryKey"`
	CompanyInfoID uint    `gorm:"index;not null"`
	URL           string  `gorm:"column:url;size:500;not null"`
	DomainName    *string `gorm:"size:200"`
	Priority      int
}

func (WebsiteAddress) TableName() string { return "website_addresses" }

type TelephoneNumber struct {
	ID                       uint    `gorm:"primaryKey"`
	CompanyInfoID            uint    `gorm:"index;not null"`
	TelephoneNumber          string  `gorm:"size:50;not null"`
	InternationalDialingCode *string `gorm:"size:10"`
	IsUnreachable            *bool
	Priority                 int
}

func (TelephoneNumber) TableName() string { return "telephone_numbers" }

type EmailAddress struct {
	ID            uint   `gorm:"primaryKey"`
	CompanyInfoID uint   `gorm:"index;not null"`
	Email         string `gorm:"size:500;not null"`
	Priority      int
}

func (EmailAddress) TableName() string { return "email_addresses" }

type RegistrationNumber struct {
	ID                      uint    `gorm:"primaryKey"`
	CompanyInfoID           uint    `gorm:"index;not null"`
	RegistrationNumber      string  `gorm:"size:200;not null"`
	TypeDescription         *string `gorm:"size:200"`
	TypeDnbCode             *int
	RegistrationNumberClass Coded `gorm:"embedded;embeddedPrefix:registration_number_class_"`
	IsPreferred             *bool
	RegistrationLocation    *string `gorm:"size:500"`
	Priority                int
}

func (RegistrationNumber) TableName() string { return "registration_numbers" }

type StockExchange struct {
	ID                   uint    `gorm:"primaryKey"`
	CompanyInfoID        uint    `gorm:"index;not null"`
	StockExchangeName    *string `gorm:"size:200"`
	StockExchangeCode    *string `gorm:"size:50"`
	TickerSymbol         *string `gorm:"size:50"`
	CountryISOAlpha2Code *string `gorm:"column:country_iso_alpha2_code;size:2"`
	IsPrimary            *bool
	Priority             int
}

func (StockExchange) TableName() string { return "stock_exchanges" }

type Bank struct {
	ID            uint    `gorm:"primaryKey"`
	CompanyInfoID uint    `gorm:"index;not null"`
	BankName      *string `gorm:"size:500"`
	BankDUNS      *string `gorm:"column:bank_duns;size:9"`
	Priority      int
}

func (Bank) TableName() string { return "banks" }

type CompanyActivity struct {
	ID            uint    `gorm:"primaryKey"`
	CompanyInfoID uint    `gorm:"index;not null"`
	Description   *string `gorm:"type:text"`
	Language      Coded   `gorm:"embedded;embeddedPrefix:language_"`
	Priority      int
}

func (CompanyActivity) TableName() string { return "company_activities" }

type EmployeeFigure struct {
	ID                  uint `gorm:"primaryKey"`
	CompanyInfoID       uint `gorm:"index;not null"`
	Value               *int
	MinimumValue        *int
	MaximumValue        *int
	EmployeeFiguresDate *string `gorm:"size:20"`
	InformationScope    Coded   `gorm:"embedded;embeddedPrefix:information_scope_"`
	Reliability         Coded   `gorm:"embedded;embeddedPrefix:reliability_"`
	Priority            int
}

func (EmployeeFigure) TableName() string { return "employee_figures" }

type UNSPSCCode struct {
	ID            uint    `gorm:"primaryKey"`
	CompanyInfoID uint    `gorm:"index;not null"`
	Code          *string `gorm:"size:50"`
	Description   *string `gorm:"size:500"`
	Priority      int
}

func (UNSPSCCode) TableName() string { return "unspsc_codes" }
