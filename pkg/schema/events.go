package schema

import (
	"time"
)

// Legal event kinds stored in LegalEvent.Kind.
const (
	KindSuit               = "suit"
	KindLien               = "lien"
	KindJudgment           = "judgment"
	KindBankruptcy         = "bankruptcy"
	KindClaim              = "claim"
	KindInsolvency         = "insolvency"
	KindLiquidation        = "liquidation"
	KindCriminalProceeding = "criminal_proceeding"
	KindOther              = "other"
)

// LegalEventsSummary keeps the legal events flags of a company.
type LegalEventsSummary struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"uniqueIndex;not null"`

	HasLegalEvents                *bool
	HasOpenLegalEvents            *bool
	HasSuits                      *bool
	HasOpenSuits                  *bool
	HasLiens                      *bool
	HasOpenLiens                  *bool
	HasJudgments                  *bool
	HasOpenJudgments              *bool
	HasBankruptcy                 *bool
	HasOpenBankruptcy             *bool
	HasClaims                     *bool
	HasOpenClaims                 *bool
	HasFinancialEmbarrassment     *bool
	HasOpenFinancialEmbarrassment *bool
	HasCriminalProceedings        *bool
	HasOpenCriminalProceedings    *bool
	HasDebarments                 *bool
	HasOpenDebarments             *bool
	HasInsolvency                 *bool
	HasLiquidation                *bool
	HasSuspensionOfPayments       *bool
	HasOtherLegalEvents           *bool
}

func (LegalEventsSummary) TableName() string       { return "legal_events_summaries" }
func (s *LegalEventsSummary) SetCompanyID(id uint) { s.CompanyID = id }

// LegalEvent is one kind of legal event of a company (liens, suits, ...)
// with its aggregated figures.
type LegalEvent struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"index;not null"`
	Kind      string `gorm:"size:30;index;not null"`

	MostRecentFilingDate *time.Time `gorm:"type:date"`
	OpenCount            *int
	OpenAmount           Money   `gorm:"embedded;embeddedPrefix:open_amount_"`
	PeriodSummary        RawJSON `gorm:"type:text"`

	Filings []LegalEventFiling `gorm:"constraint:OnDelete:CASCADE"`
}

func (LegalEvent) TableName() string       { return "legal_events" }
func (e *LegalEvent) SetCompanyID(id uint) { e.CompanyID = id }

// LegalEventFiling is a court or registry filing of a legal event.
type LegalEventFiling struct {
	ID           uint `gorm:"primaryKey"`
	LegalEventID uint `gorm:"index;not null"`

	IsStopD            *bool      `gorm:"column:is_stop_d"`
	FilingType         Coded      `gorm:"embedded;embeddedPrefix:filing_type_"`
	FilingClass        Coded      `gorm:"embedded;embeddedPrefix:filing_class_"`
	FilingDate         *time.Time `gorm:"type:date"`
	ReceivedDate       *time.Time `gorm:"type:date"`
	StartDate          *time.Time `gorm:"type:date"`
	EndDate            *time.Time `gorm:"type:date"`
	FilingReference    *string    `gorm:"size:200"`
	FilingChapter      *string    `gorm:"size:50"`
	FilingMedium       *string    `gorm:"size:200"`
	JurisdictionType   Coded      `gorm:"embedded;embeddedPrefix:jurisdiction_type_"`
	CourtName          *string    `gorm:"size:500"`
	FilingAmount       Money      `gorm:"embedded;embeddedPrefix:filing_amount_"`
	AwardedAmount      Money      `gorm:"embedded;embeddedPrefix:awarded_amount_"`
	Status             Coded      `gorm:"embedded;embeddedPrefix:status_"`
	StatusDate         *time.Time `gorm:"type:date"`
	HasHistoricalEvent *bool
	Priority           int

	RolePlayers    []FilingRolePlayer    `gorm:"constraint:OnDelete:CASCADE"`
	ReferenceDates []FilingReferenceDate `gorm:"constraint:OnDelete:CASCADE"`
	TextEntries    []FilingTextEntry     `gorm:"constraint:OnDelete:CASCADE"`
}

func (LegalEventFiling) TableName() string { return "legal_event_filings" }

// FilingRolePlayer is a party of a filing: debtor, creditor, plaintiff.
type FilingRolePlayer struct {
	ID                 uint `gorm:"primaryKey"`
	LegalEventFilingID uint `gorm:"index;not null"`

	RolePlayerType  Coded   `gorm:"embedded;embeddedPrefix:role_player_type_"`
	Name            *string `gorm:"size:500"`
	EmployerName    *string `gorm:"size:500"`
	DUNS            *string `gorm:"column:duns;size:9"`
	Address         Address `gorm:"embedded;embeddedPrefix:address_"`
	Telephone       *string `gorm:"size:50"`
	OperatingStatus *string `gorm:"size:200"`
	Priority        int
}

func (FilingRolePlayer) TableName() string { return "filing_role_players" }

type FilingReferenceDate struct {
	ID                 uint `gorm:"primaryKey"`
	LegalEventFilingID uint `gorm:"index;not null"`

	ReferenceType Coded      `gorm:"embedded;embeddedPrefix:reference_type_"`
	ReferenceDate *time.Time `gorm:"type:date"`
	Priority      int
}

func (FilingReferenceDate) TableName() string { return "filing_reference_dates" }

type FilingTextEntry struct {
	ID                 uint `gorm:"primaryKey"`
	LegalEventFilingID uint `gorm:"index;not null"`
	TextEntry          `gorm:"embedded"`
}

func (FilingTextEntry) TableName() string { return "filing_text_entries" }

// TextEntry is a free-text remark attached to an event or filing.
type TextEntry struct {
	Text            *string `gorm:"type:text"`
	TypeDescription *string `gorm:"size:200"`
	TypeDnbCode     *int
	Language        Coded `gorm:"embedded;embeddedPrefix:language_"`
	Priority        int
}

// AwardsSummary keeps government awards figures of a company.
type AwardsSummary struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"uniqueIndex;not null"`

	HasContracts     *bool
	HasLoans         *bool
	HasGrants        *bool
	HasDebts         *bool
	HasOpenContracts *bool
	HasOpenLoans     *bool
	HasOpenGrants    *bool
	HasOpenDebts     *bool

	ObligatedContractsAmount Money `gorm:"embedded;embeddedPrefix:obligated_contracts_amount_"`
	CurrentContractsAmount   Money `gorm:"embedded;embeddedPrefix:current_contracts_amount_"`
	TotalOpenContractsAmount Money `gorm:"embedded;embeddedPrefix:total_open_contracts_amount_"`
	TotalContractsAmount     Money `gorm:"embedded;embeddedPrefix:total_contracts_amount_"`
	TotalOpenContractsCount  *int

	MostRecentContractDate *time.Time `gorm:"type:date"`
	MostRecentLoanDate     *time.Time `gorm:"type:date"`
	MostRecentGrantDate    *time.Time `gorm:"type:date"`
	MostRecentDebtDate     *time.Time `gorm:"type:date"`
}

func (AwardsSummary) TableName() string       { return "awards_summaries" }
func (s *AwardsSummary) SetCompanyID(id uint) { s.CompanyID = id }

type Contract struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"index;not null"`

	AwardID                 *string  `gorm:"size:500"`
	AwardDescription        *string  `gorm:"type:text"`
	AwardModificationNumber *string  `gorm:"size:50"`
	ContractID              *string  `gorm:"size:200"`
	ContractType            CodeDesc `gorm:"embedded;embeddedPrefix:contract_type_"`
	ContractPriceType       CodeDesc `gorm:"embedded;embeddedPrefix:contract_price_type_"`
	BaseAndAllOptionsAmount Money    `gorm:"embedded;embeddedPrefix:base_and_all_options_amount_"`
	CurrentTotalAmount      Money    `gorm:"embedded;embeddedPrefix:current_total_amount_"`
	FundingAgency           CodeDesc `gorm:"embedded;embeddedPrefix:funding_agency_"`
	AwardingOffice          CodeDesc `gorm:"embedded;embeddedPrefix:awarding_office_"`
	Priority                int

	Actions         []ContractAction         `gorm:"constraint:OnDelete:CASCADE"`
	Characteristics []ContractCharacteristic `gorm:"constraint:OnDelete:CASCADE"`
}

func (Contract) TableName() string       { return "contracts" }
func (c *Contract) SetCompanyID(id uint) { c.CompanyID = id }

type ContractAction struct {
	ID         uint `gorm:"primaryKey"`
	ContractID uint `gorm:"index;not null"`

	ActionDate           *time.Time `gorm:"type:date"`
	ActionFiscalYear     *string    `gorm:"size:4"`
	ActionsCount         *int
	EffectiveDate        *time.Time `gorm:"type:date"`
	ExpirationDate       *time.Time `gorm:"type:date"`
	FederalFundingAmount Money      `gorm:"embedded;embeddedPrefix:federal_funding_amount_"`
	Priority             int
}

func (ContractAction) TableName() string { return "contract_actions" }

type ContractCharacteristic struct {
	ID          uint    `gorm:"primaryKey"`
	ContractID  uint    `gorm:"index;not null"`
	Description *string `gorm:"size:500"`
	DnbCode     *int
	Priority    int
}

func (ContractCharacteristic) TableName() string { return "contract_characteristics" }

// ExclusionsSummary keeps debarment figures of a company.
type ExclusionsSummary struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"uniqueIndex;not null"`

	HasActiveExclusions             *bool
	HasInactiveExclusions           *bool
	ActiveExclusionsCount           *int
	InactiveExclusionsCount         *int
	MostRecentActiveExclusionDate   *time.Time `gorm:"type:date"`
	MostRecentInactiveExclusionDate *time.Time `gorm:"type:date"`
}

func (ExclusionsSummary) TableName() string       { return "exclusions_summaries" }
func (s *ExclusionsSummary) SetCompanyID(id uint) { s.CompanyID = id }

// Exclusion is a government exclusion record. Active and inactive records
// share the shape but live in separate tables.
type Exclusion struct {
	SAMRecordNumber     *string    `gorm:"column:sam_record_number;size:200"`
	CageCode            *string    `gorm:"size:50"`
	ClassificationType  Coded      `gorm:"embedded;embeddedPrefix:classification_type_"`
	ProgramType         *string    `gorm:"size:200"`
	AgencyName          *string    `gorm:"size:500"`
	EffectiveDate       *time.Time `gorm:"type:date"`
	ExpirationDate      *time.Time `gorm:"type:date"`
	SAMRecordUpdateDate *time.Time `gorm:"column:sam_record_update_date;type:date"`
	AgencyComments      *string    `gorm:"type:text"`
}

type ActiveExclusion struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"index;not null"`
	Exclusion `gorm:"embedded"`
	Priority  int
}

func (ActiveExclusion) TableName() string       { return "active_exclusions" }
func (e *ActiveExclusion) SetCompanyID(id uint) { e.CompanyID = id }

type InactiveExclusion struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"index;not null"`
	Exclusion `gorm:"embedded"`
	Priority  int
}

func (InactiveExclusion) TableName() string       { return "inactive_exclusions" }
func (e *InactiveExclusion) SetCompanyID(id uint) { e.CompanyID = id }

type SignificantEventsSummary struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"uniqueIndex;not null"`

	HasSignificantEvents    *bool
	HasOperationalEvents    *bool
	HasDisastrousEvents     *bool
	HasBurglaryOccured      *bool
	HasFireOccurred         *bool
	HasBusinessDiscontinued *bool
	HasNameChange           *bool
	HasPartnerChange        *bool
	HasCEOChange            *bool `gorm:"column:has_ceo_change"`
	HasControlChange        *bool
}

func (SignificantEventsSummary) TableName() string       { return "significant_events_summaries" }
func (s *SignificantEventsSummary) SetCompanyID(id uint) { s.CompanyID = id }

type SignificantEvent struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"index;not null"`

	EventDate                      *time.Time `gorm:"type:date"`
	EventType                      Coded      `gorm:"embedded;embeddedPrefix:event_type_"`
	StartDate                      *time.Time `gorm:"type:date"`
	ImpactDetails                  *string    `gorm:"type:text"`
	ImpactAmount                   Money      `gorm:"embedded;embeddedPrefix:impact_amount_"`
	ImpactedPremisesType           *string    `gorm:"size:200"`
	DamagedAssetsClass             *string    `gorm:"size:200"`
	ImpactedChildren               *int
	InsuranceClaimSettlementAmount Money `gorm:"embedded;embeddedPrefix:insurance_claim_settlement_amount_"`
	DataProvider                   Coded `gorm:"embedded;embeddedPrefix:data_provider_"`
	Priority                       int

	TextEntries []SignificantEventTextEntry `gorm:"constraint:OnDelete:CASCADE"`
}

func (SignificantEvent) TableName() string       { return "significant_events" }
func (e *SignificantEvent) SetCompanyID(id uint) { e.CompanyID = id }

type SignificantEventTextEntry struct {
	ID                 uint `gorm:"primaryKey"`
	SignificantEventID uint `gorm:"index;not null"`
	TextEntry          `gorm:"embedded"`
}

func (SignificantEventTextEntry) TableName() string { return "significant_event_text_entries" }

type FinancingEventsSummary struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"uniqueIndex;not null"`

	HasFinancingEvents   *bool
	HasSecuredFilings    *bool
	HasUCCFilings        *bool      `gorm:"column:has_ucc_filings"`
	MostRecentFilingDate *time.Time `gorm:"type:date"`
	TotalFilingsCount    *int
	TotalSecuredAmount   Money `gorm:"embedded;embeddedPrefix:total_secured_amount_"`
}

func (FinancingEventsSummary) TableName() string       { return "financing_events_summaries" }
func (s *FinancingEventsSummary) SetCompanyID(id uint) { s.CompanyID = id }

type FinancingEvent struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"index;not null"`

	FilingType           Coded      `gorm:"embedded;embeddedPrefix:filing_type_"`
	MostRecentFilingDate *time.Time `gorm:"type:date"`
	TotalFilingsCount    *int
	Priority             int

	Filings []FinancingEventFiling `gorm:"constraint:OnDelete:CASCADE"`
}

func (FinancingEvent) TableName() string       { return "financing_events" }
func (e *FinancingEvent) SetCompanyID(id uint) { e.CompanyID = id }

type FinancingEventFiling struct {
	ID               uint `gorm:"primaryKey"`
	FinancingEventID uint `gorm:"index;not null"`

	FilingNumber          *string    `gorm:"size:200"`
	FilingDate            *time.Time `gorm:"type:date"`
	FilingType            Coded      `gorm:"embedded;embeddedPrefix:filing_type_"`
	FilingJurisdiction    *string    `gorm:"size:200"`
	ReceivedDate          *time.Time `gorm:"type:date"`
	ExpirationDate        *time.Time `gorm:"type:date"`
	LapseDate             *time.Time `gorm:"type:date"`
	TerminationDate       *time.Time `gorm:"type:date"`
	SecuredPartyName      *string    `gorm:"size:500"`
	SecuredPartyAddress   *string    `gorm:"size:500"`
	DebtorName            *string    `gorm:"size:500"`
	DebtorDUNS            *string    `gorm:"column:debtor_duns;size:9"`
	CollateralDescription *string    `gorm:"type:text"`
	CollateralAmount      Money      `gorm:"embedded;embeddedPrefix:collateral_amount_"`
	Status                Coded      `gorm:"embedded;embeddedPrefix:status_"`
	IsActive              *bool
	Priority              int
}

func (FinancingEventFiling) TableName() string { return "financing_event_filings" }

type ViolationsSummary struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"uniqueIndex;not null"`

	HasEPAViolations         *bool `gorm:"column:has_epa_violations"`
	HasOSHAViolations        *bool `gorm:"column:has_osha_violations"`
	HasFDAViolations         *bool `gorm:"column:has_fda_violations"`
	HasOtherViolations       *bool
	TotalEPAViolationsCount  *int       `gorm:"column:total_epa_violations_count"`
	TotalOSHAViolationsCount *int       `gorm:"column:total_osha_violations_count"`
	TotalFDAViolationsCount  *int       `gorm:"column:total_fda_violations_count"`
	MostRecentViolationDate  *time.Time `gorm:"type:date"`
}

func (ViolationsSummary) TableName() string       { return "violations_summaries" }
func (s *ViolationsSummary) SetCompanyID(id uint) { s.CompanyID = id }

type Violation struct {
	ID        uint `gorm:"primaryKey"`
	CompanyID uint `gorm:"index;not null"`

	ViolationType         Coded      `gorm:"embedded;embeddedPrefix:violation_type_"`
	AgencyName            *string    `gorm:"size:500"`
	AgencyCode            *string    `gorm:"size:50"`
	ViolationDate         *time.Time `gorm:"type:date"`
	CitationNumber        *string    `gorm:"size:200"`
	CaseNumber            *string    `gorm:"size:200"`
	SeverityLevel         *string    `gorm:"size:100"`
	ViolationDescription  *string    `gorm:"type:text"`
	RegulationViolated    *string    `gorm:"size:500"`
	StandardViolated      *string    `gorm:"size:500"`
	InitialPenalty        Money      `gorm:"embedded;embeddedPrefix:initial_penalty_"`
	CurrentPenalty        Money      `gorm:"embedded;embeddedPrefix:current_penalty_"`
	Status                Coded      `gorm:"embedded;embeddedPrefix:status_"`
	StatusDate            *time.Time `gorm:"type:date"`
	IsContested           *bool
	IsRepeatViolation     *bool
	ResolutionDate        *time.Time `gorm:"type:date"`
	ResolutionDescription *string    `gorm:"type:text"`
	AbatementDate         *time.Time `gorm:"type:date"`
	FacilityName          *string    `gorm:"size:500"`
	FacilityAddress       Address    `gorm:"embedded;embeddedPrefix:facility_address_"`
	Priority              int
}

func (Violation) TableName() string       { return "violations" }
func (v *Violation) SetCompanyID(id uint) { v.CompanyID = id }
