package parser

import (
	"github.com/gnames/datablock/pkg/document"
	"github.com/gnames/datablock/pkg/nested"
	"github.com/gnames/datablock/pkg/schema"
)

// legalKinds maps sections of legalEvents to the kind of LegalEvent rows.
var legalKinds = []struct {
	key, kind string
}{
	{"suits", schema.KindSuit},
	{"liens", schema.KindLien},
	{"judgments", schema.KindJudgment},
	{"bankruptcy", schema.KindBankruptcy},
	{"claims", schema.KindClaim},
	{"insolvency", schema.KindInsolvency},
	{"liquidation", schema.KindLiquidation},
	{"criminalProceedings", schema.KindCriminalProceeding},
	{"otherLegalEvents", schema.KindOther},
}

// EventsFilings converts every section of an events and filings document
// that is present into a generation of its detail group.
func EventsFilings(doc document.EventsFilingsDoc) []Generation {
	org := doc.Organization()
	sections := []struct {
		key   string
		group schema.Group
		parse func(map[string]any) []schema.Row
	}{
		{"legalEvents", schema.GroupLegalEvents, legalEvents},
		{"awards", schema.GroupAwards, awards},
		{"exclusions", schema.GroupExclusions, exclusions},
		{"significantEvents", schema.GroupSignificantEvents, significantEvents},
		{"financingEvents", schema.GroupFinancingEvents, financingEvents},
		{"violations", schema.GroupViolations, violations},
	}

	var res []Generation
	for _, s := range sections {
		m, ok := section(org, s.key)
		if !ok {
			continue
		}
		gen := Generation{Group: s.group}
		if len(m) > 0 {
			gen.Rows = s.parse(m)
		}
		res = append(res, gen)
	}
	return res
}

func legalEvents(m map[string]any) []schema.Row {
	sum := &schema.LegalEventsSummary{
		HasLegalEvents:                nested.Bool(m, "hasLegalEvents"),
		HasOpenLegalEvents:            nested.Bool(m, "hasOpenLegalEvents"),
		HasSuits:                      nested.Bool(m, "hasSuits"),
		HasOpenSuits:                  nested.Bool(m, "hasOpenSuits"),
		HasLiens:                      nested.Bool(m, "hasLiens"),
		HasOpenLiens:                  nested.Bool(m, "hasOpenLiens"),
		HasJudgments:                  nested.Bool(m, "hasJudgments"),
		HasOpenJudgments:              nested.Bool(m, "hasOpenJudgments"),
		HasBankruptcy:                 nested.Bool(m, "hasBankruptcy"),
		HasOpenBankruptcy:             nested.Bool(m, "hasOpenBankruptcy"),
		HasClaims:                     nested.Bool(m, "hasClaims"),
		HasOpenClaims:                 nested.Bool(m, "hasOpenClaims"),
		HasFinancialEmbarrassment:     nested.Bool(m, "hasFinancialEmbarrassment"),
		HasOpenFinancialEmbarrassment: nested.Bool(m, "hasOpenFinancialEmbarrassment"),
		HasCriminalProceedings:        nested.Bool(m, "hasCriminalProceedings"),
		HasOpenCriminalProceedings:    nested.Bool(m, "hasOpenCriminalProceedings"),
		HasDebarments:                 nested.Bool(m, "hasDebarments"),
		HasOpenDebarments:             nested.Bool(m, "hasOpenDebarments"),
		HasInsolvency:                 nested.Bool(m, "hasInsolvency"),
		HasLiquidation:                nested.Bool(m, "hasLiquidation"),
		HasSuspensionOfPayments:       nested.Bool(m, "hasSuspensionOfPayments"),
		HasOtherLegalEvents:           nested.Bool(m, "hasOtherLegalEvents"),
	}
	res := []schema.Row{sum}

	for _, lk := range legalKinds {
		km := nested.Map(m, lk.key)
		if len(km) == 0 {
			continue
		}
		res = append(res, &schema.LegalEvent{
			Kind:                 lk.kind,
			MostRecentFilingDate: date(km, "mostRecentFilingDate"),
			OpenCount:            nested.Int(km, "openCount"),
			OpenAmount:           money(km, "openAmount"),
			PeriodSummary:        rawJSON(km, "periodSummary"),
			Filings:              legalFilings(km),
		})
	}
	return res
}

func legalFilings(km map[string]any) []schema.LegalEventFiling {
	items, idx := objects(km, "filings")
	res := make([]schema.LegalEventFiling, 0, len(items))
	for i, f := range items {
		res = append(res, schema.LegalEventFiling{
			IsStopD:            nested.Bool(f, "isStopD"),
			FilingType:         coded(f, "filingType"),
			FilingClass:        coded(f, "filingClass"),
			FilingDate:         date(f, "filingDate"),
			ReceivedDate:       date(f, "receivedDate"),
			StartDate:          date(f, "startDate"),
			EndDate:            date(f, "endDate"),
			FilingReference:    str(f, "filingReference"),
			FilingChapter:      str(f, "filingChapter"),
			FilingMedium:       desc(f, "filingMedium"),
			JurisdictionType:   coded(f, "jurisdictionType"),
			CourtName:          str(f, "court", "name"),
			FilingAmount:       money(f, "filingAmount"),
			AwardedAmount:      money(f, "awardedAmount"),
			Status:             coded(f, "status"),
			StatusDate:         date(f, "statusDate"),
			HasHistoricalEvent: nested.Bool(f, "hasHistoricalEvent"),
			Priority:           priority(f, idx[i]),
			RolePlayers:        rolePlayers(f),
			ReferenceDates:     referenceDates(f),
			TextEntries:        filingTextEntries(f),
		})
	}
	return res
}

func rolePlayers(f map[string]any) []schema.FilingRolePlayer {
	items, idx := objects(f, "rolePlayers")
	res := make([]schema.FilingRolePlayer, 0, len(items))
	for i, rp := range items {
		var phone *string
		if s := nested.Slice(rp, "telephone"); len(s) > 0 {
			phone = scalarOr(s[0], "telephoneNumber")
		}
		res = append(res, schema.FilingRolePlayer{
			RolePlayerType:  coded(rp, "rolePlayerType"),
			Name:            str(rp, "name"),
			EmployerName:    str(rp, "employerName"),
			DUNS:            str(rp, "duns"),
			Address:         address(rp, "address"),
			Telephone:       phone,
			OperatingStatus: desc(rp, "operatingStatus"),
			Priority:        priority(rp, idx[i]),
		})
	}
	return res
}

func referenceDates(f map[string]any) []schema.FilingReferenceDate {
	items, idx := objects(f, "referenceDates")
	res := make([]schema.FilingReferenceDate, 0, len(items))
	for i, v := range items {
		res = append(res, schema.FilingReferenceDate{
			ReferenceType: coded(v, "referenceType"),
			ReferenceDate: date(v, "referenceDate"),
			Priority:      priority(v, idx[i]),
		})
	}
	return res
}

func filingTextEntries(f map[string]any) []schema.FilingTextEntry {
	entries := textEntries(f, "textEntry")
	res := make([]schema.FilingTextEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, schema.FilingTextEntry{TextEntry: e})
	}
	return res
}

func awards(m map[string]any) []schema.Row {
	sum := &schema.AwardsSummary{
		HasContracts:     nested.Bool(m, "hasContracts"),
		HasLoans:         nested.Bool(m, "hasLoans"),
		HasGrants:        nested.Bool(m, "hasGrants"),
		HasDebts:         nested.Bool(m, "hasDebts"),
		HasOpenContracts: nested.Bool(m, "hasOpenContracts"),
		HasOpenLoans:     nested.Bool(m, "hasOpenLoans"),
		HasOpenGrants:    nested.Bool(m, "hasOpenGrants"),
		HasOpenDebts:     nested.Bool(m, "hasOpenDebts"),

		ObligatedContractsAmount: money(m, "obligatedContractsAmount"),
		CurrentContractsAmount:   money(m, "currentContractsAmount"),
		TotalOpenContractsAmount: money(m, "totalOpenContractsAmount"),
		TotalContractsAmount:     money(m, "totalContractsAmount"),
		TotalOpenContractsCount:  nested.Int(m, "totalOpenContractsCount"),

		MostRecentContractDate: date(m, "mostRecentContractDate"),
		MostRecentLoanDate:     date(m, "mostRecentLoanDate"),
		MostRecentGrantDate:    date(m, "mostRecentGrantDate"),
		MostRecentDebtDate:     date(m, "mostRecentDebtDate"),
	}
	res := []schema.Row{sum}

	items, idx := objects(m, "contracts")
	for i, c := range items {
		res = append(res, &schema.Contract{
			AwardID:                 str(c, "awardID"),
			AwardDescription:        str(c, "awardDescription"),
			AwardModificationNumber: str(c, "awardModificationNumber"),
			ContractID:              str(c, "contractID"),
			ContractType:            codeDesc(c, "contractType"),
			ContractPriceType:       codeDesc(c, "contractPriceType"),
			BaseAndAllOptionsAmount: money(c, "baseAndAllOptionsAmount"),
			CurrentTotalAmount:      money(c, "currentTotalAmount"),
			FundingAgency:           codeDesc(c, "fundingAgency"),
			AwardingOffice:          codeDesc(c, "awardingOffice"),
			Priority:                priority(c, idx[i]),
			Actions:                 contractActions(c),
			Characteristics:         contractCharacteristics(c),
		})
	}
	return res
}

func contractActions(c map[string]any) []schema.ContractAction {
	items, idx := objects(c, "actions")
	res := make([]schema.ContractAction, 0, len(items))
	for i, a := range items {
		res = append(res, schema.ContractAction{
			ActionDate:           date(a, "actionDate"),
			ActionFiscalYear:     str(a, "actionFiscalYear"),
			ActionsCount:         nested.Int(a, "actionsCount"),
			EffectiveDate:        date(a, "effectiveDate"),
			ExpirationDate:       date(a, "expirationDate"),
			FederalFundingAmount: money(a, "federalFundingAmount"),
			Priority:             priority(a, idx[i]),
		})
	}
	return res
}

func contractCharacteristics(c map[string]any) []schema.ContractCharacteristic {
	var res []schema.ContractCharacteristic
	for i, v := range nested.Slice(c, "characteristics") {
		d := scalarOr(v, "description")
		code := nested.Int(v, "dnbCode")
		if d == nil && code == nil {
			continue
		}
		res = append(res, schema.ContractCharacteristic{
			Description: d,
			DnbCode:     code,
			Priority:    priority(v, i),
		})
	}
	return res
}

func exclusions(m map[string]any) []schema.Row {
	sum := &schema.ExclusionsSummary{
		HasActiveExclusions:             nested.Bool(m, "hasActiveExclusions"),
		HasInactiveExclusions:           nested.Bool(m, "hasInactiveExclusions"),
		ActiveExclusionsCount:           nested.Int(m, "activeExclusionsCount"),
		InactiveExclusionsCount:         nested.Int(m, "inactiveExclusionsCount"),
		MostRecentActiveExclusionDate:   date(m, "mostRecentActiveExclusionDate"),
		MostRecentInactiveExclusionDate: date(m, "mostRecentInactiveExclusionDate"),
	}
	res := []schema.Row{sum}

	active, idx := objects(m, "activeExclusions")
	for i, e := range active {
		res = append(res, &schema.ActiveExclusion{
			Exclusion: exclusion(e),
			Priority:  priority(e, idx[i]),
		})
	}
	inactive, idx := objects(m, "inactiveExclusions")
	for i, e := range inactive {
		res = append(res, &schema.InactiveExclusion{
			Exclusion: exclusion(e),
			Priority:  priority(e, idx[i]),
		})
	}
	return res
}

func exclusion(e map[string]any) schema.Exclusion {
	return schema.Exclusion{
		SAMRecordNumber:     str(e, "samRecordNumber"),
		CageCode:            str(e, "cageCode"),
		ClassificationType:  coded(e, "classificationType"),
		ProgramType:         desc(e, "programType"),
		AgencyName:          str(e, "agencyName"),
		EffectiveDate:       date(e, "effectiveDate"),
		ExpirationDate:      date(e, "expirationDate"),
		SAMRecordUpdateDate: date(e, "samRecordUpdateDate"),
		AgencyComments:      str(e, "agencyComments"),
	}
}

func significantEvents(m map[string]any) []schema.Row {
	sum := &schema.SignificantEventsSummary{
		HasSignificantEvents:    nested.Bool(m, "hasSignificantEvents"),
		HasOperationalEvents:    nested.Bool(m, "hasOperationalEvents"),
		HasDisastrousEvents:     nested.Bool(m, "hasDisastrousEvents"),
		HasBurglaryOccured:      nested.Bool(m, "hasBurglaryOccured"),
		HasFireOccurred:         nested.Bool(m, "hasFireOccurred"),
		HasBusinessDiscontinued: nested.Bool(m, "hasBusinessDiscontinued"),
		HasNameChange:           nested.Bool(m, "hasNameChange"),
		HasPartnerChange:        nested.Bool(m, "hasPartnerChange"),
		HasCEOChange:            nested.Bool(m, "hasCEOChange"),
		HasControlChange:        nested.Bool(m, "hasControlChange"),
	}
	res := []schema.Row{sum}

	items, idx := objects(m, "events")
	for i, e := range items {
		ev := &schema.SignificantEvent{
			EventDate:                      date(e, "eventDate"),
			EventType:                      coded(e, "eventType"),
			StartDate:                      date(e, "startDate"),
			ImpactDetails:                  str(e, "impactDetails"),
			ImpactAmount:                   money(e, "impactAmount"),
			ImpactedPremisesType:           desc(e, "impactedPremisesType"),
			DamagedAssetsClass:             desc(e, "damagedAssetsClass"),
			ImpactedChildren:               nested.Int(e, "impactedChildren"),
			InsuranceClaimSettlementAmount: money(e, "insuranceClaimSettlementAmount"),
			DataProvider:                   coded(e, "dataProvider"),
			Priority:                       priority(e, idx[i]),
		}
		for _, te := range textEntries(e, "textEntry") {
			ev.TextEntries = append(ev.TextEntries, schema.SignificantEventTextEntry{TextEntry: te})
		}
		res = append(res, ev)
	}
	return res
}

func financingEvents(m map[string]any) []schema.Row {
	sum := &schema.FinancingEventsSummary{
		HasFinancingEvents:   nested.Bool(m, "hasFinancingEvents"),
		HasSecuredFilings:    nested.Bool(m, "hasSecuredFilings"),
		HasUCCFilings:        nested.Bool(m, "hasUCCFilings"),
		MostRecentFilingDate: date(m, "mostRecentFilingDate"),
		TotalFilingsCount:    nested.Int(m, "totalFilingsCount"),
		TotalSecuredAmount:   money(m, "totalSecuredAmount"),
	}
	res := []schema.Row{sum}

	items, idx := objects(m, "events")
	for i, e := range items {
		res = append(res, &schema.FinancingEvent{
			FilingType:           coded(e, "filingType"),
			MostRecentFilingDate: date(e, "mostRecentFilingDate"),
			TotalFilingsCount:    nested.Int(e, "totalFilingsCount"),
			Priority:             priority(e, idx[i]),
			Filings:              financingFilings(e),
		})
	}
	return res
}

func financingFilings(e map[string]any) []schema.FinancingEventFiling {
	items, idx := objects(e, "filings")
	res := make([]schema.FinancingEventFiling, 0, len(items))
	for i, f := range items {
		res = append(res, schema.FinancingEventFiling{
			FilingNumber:          str(f, "filingNumber"),
			FilingDate:            date(f, "filingDate"),
			FilingType:            coded(f, "filingType"),
			FilingJurisdiction:    desc(f, "filingJurisdiction"),
			ReceivedDate:          date(f, "receivedDate"),
			ExpirationDate:        date(f, "expirationDate"),
			LapseDate:             date(f, "lapseDate"),
			TerminationDate:       date(f, "terminationDate"),
			SecuredPartyName:      str(f, "securedParty", "name"),
			SecuredPartyAddress:   addressLine(f, "securedParty", "address"),
			DebtorName:            str(f, "debtor", "name"),
			DebtorDUNS:            str(f, "debtor", "duns"),
			CollateralDescription: str(f, "collateralDescription"),
			CollateralAmount:      money(f, "collateralAmount"),
			Status:                coded(f, "status"),
			IsActive:              nested.Bool(f, "isActive"),
			Priority:              priority(f, idx[i]),
		})
	}
	return res
}

func violations(m map[string]any) []schema.Row {
	sum := &schema.ViolationsSummary{
		HasEPAViolations:         nested.Bool(m, "hasEPAViolations"),
		HasOSHAViolations:        nested.Bool(m, "hasOSHAViolations"),
		HasFDAViolations:         nested.Bool(m, "hasFDAViolations"),
		HasOtherViolations:       nested.Bool(m, "hasOtherViolations"),
		TotalEPAViolationsCount:  nested.Int(m, "totalEPAViolationsCount"),
		TotalOSHAViolationsCount: nested.Int(m, "totalOSHAViolationsCount"),
		TotalFDAViolationsCount:  nested.Int(m, "totalFDAViolationsCount"),
		MostRecentViolationDate:  date(m, "mostRecentViolationDate"),
	}
	res := []schema.Row{sum}

	items, idx := objects(m, "violations")
	for i, v := range items {
		res = append(res, &schema.Violation{
			ViolationType:         coded(v, "violationType"),
			AgencyName:            str(v, "agencyName"),
			AgencyCode:            str(v, "agencyCode"),
			ViolationDate:         date(v, "violationDate"),
			CitationNumber:        str(v, "citationNumber"),
			CaseNumber:            str(v, "caseNumber"),
			SeverityLevel:         desc(v, "severityLevel"),
			ViolationDescription:  str(v, "violationDescription"),
			RegulationViolated:    str(v, "regulationViolated"),
			StandardViolated:      str(v, "standardViolated"),
			InitialPenalty:        money(v, "initialPenalty"),
			CurrentPenalty:        money(v, "currentPenalty"),
			Status:                coded(v, "status"),
			StatusDate:            date(v, "statusDate"),
			IsContested:           nested.Bool(v, "isContested"),
			IsRepeatViolation:     nested.Bool(v, "isRepeatViolation"),
			ResolutionDate:        date(v, "resolutionDate"),
			ResolutionDescription: str(v, "resolutionDescription"),
			AbatementDate:         date(v, "abatementDate"),
			FacilityName:          str(v, "facilityName"),
			FacilityAddress:       address(v, "facilityAddress"),
			Priority:              priority(v, idx[i]),
		})
	}
	return res
}
