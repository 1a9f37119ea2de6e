package parser

import (
	"github.com/gnames/datablock/pkg/document"
	"github.com/gnames/datablock/pkg/nested"
	"github.com/gnames/datablock/pkg/schema"
)

// multilingualKeys maps arrays of names in other languages to the name
// type stored with them.
var multilingualKeys = []struct {
	key, nameType string
}{
	{"multilingualPrimaryName", "primary"},
	{"multilingualRegisteredNames", "registered"},
	{"multilingualTradestyleNames", "tradestyle"},
}

// CompanyInfo converts the firmographic profile of a company. The whole
// organization object is the section of this group, so the generation is
// always present and has exactly one row.
func CompanyInfo(doc document.CompanyInfoDoc) Generation {
	org := doc.Organization()
	status := nested.Map(org, "dunsControlStatus")

	ci := &schema.CompanyInfo{
		RegisteredName: str(org, "registeredName"),

		IsFortune1000Listed:          nested.Bool(org, "isFortune1000Listed"),
		IsForbesLargestPrivateListed: nested.Bool(org, "isForbesLargestPrivateCompaniesListed"),
		IsNonClassifiedEstablishment: nested.Bool(org, "isNonClassifiedEstablishment"),
		IsStandalone:                 nested.Bool(org, "isStandalone"),
		IsAgent:                      nested.Bool(org, "isAgent"),
		IsImporter:                   nested.Bool(org, "isImporter"),
		IsExporter:                   nested.Bool(org, "isExporter"),
		IsSmallBusiness:              nested.Bool(org, "isSmallBusiness"),

		BusinessEntityType:   coded(org, "businessEntityType"),
		LegalForm:            coded(org, "legalForm"),
		LegalFormStartDate:   str(org, "legalForm", "startDate"),
		ControlOwnershipType: coded(org, "controlOwnershipType"),
		ControlOwnershipDate: date(org, "controlOwnershipDate"),

		StartDate:                 str(org, "startDate"),
		IncorporatedDate:          date(org, "incorporatedDate"),
		FiscalYearEnd:             str(org, "fiscalYearEnd"),
		ImperialCalendarStartYear: str(org, "imperialCalendarStartYear"),

		OperatingStatus:          coded(status, "operatingStatus"),
		OperatingStatusStartDate: date(status, "operatingStatus", "startDate"),
		OperatingSubStatus:       coded(status, "operatingSubStatus"),
		RecordClass:              coded(status, "recordClass"),
		FirstReportDate:          date(status, "firstReportDate"),
		IsMarketable:             nested.Bool(status, "isMarketable"),
		IsMailUndeliverable:      nested.Bool(status, "isMailUndeliverable"),
		IsTelephoneDisconnected:  nested.Bool(status, "isTelephoneDisconnected"),
		IsDelisted:               nested.Bool(status, "isDelisted"),
		IsSelfRequestedDUNS:      nested.Bool(status, "isSelfRequestedDUNS"),

		PrimaryAddress:    address(org, "primaryAddress"),
		MailingAddress:    address(org, "mailingAddress"),
		RegisteredAddress: address(org, "registeredAddress"),

		PreferredLanguage: coded(org, "preferredLanguage"),
		DefaultCurrency:   upper(org, "defaultCurrency"),

		BusinessTrustIndexScore:       nested.Float(org, "businessTrustIndex", "score"),
		BusinessTrustIndexDescription: str(org, "businessTrustIndex", "description"),

		IndustryCodes:       industryCodes(org),
		TradeStyleNames:     tradeStyleNames(org),
		MultilingualNames:   multilingualNames(org),
		WebsiteAddresses:    websiteAddresses(org),
		TelephoneNumbers:    telephoneNumbers(org),
		EmailAddresses:      emailAddresses(org),
		RegistrationNumbers: registrationNumbers(org),
		StockExchanges:      stockExchanges(org),
		Banks:               banks(org),
		CompanyActivities:   companyActivities(org),
		EmployeeFigures:     employeeFigures(org),
		UNSPSCCodes:         unspscCodes(org),
	}

	return Generation{
		Group: schema.GroupCompanyInfo,
		Rows:  []schema.Row{ci},
	}
}

func industryCodes(org map[string]any) []schema.IndustryCode {
	items, idx := objects(org, "industryCodes")
	res := make([]schema.IndustryCode, 0, len(items))
	for i, v := range items {
		res = append(res, schema.IndustryCode{
			Code:            str(v, "code"),
			Description:     str(v, "description"),
			TypeDescription: str(v, "typeDescription"),
			TypeDnbCode:     nested.Int(v, "typeDnBCode"),
			Priority:        priority(v, idx[i]),
		})
	}
	return res
}

func tradeStyleNames(org map[string]any) []schema.TradeStyleName {
	var res []schema.TradeStyleName
	for i, v := range nested.Slice(org, "tradeStyleNames") {
		name := scalarOr(v, "name")
		if name == nil {
			continue
		}
		res = append(res, schema.TradeStyleName{
			Name:     *name,
			Priority: priority(v, i),
		})
	}
	return res
}

func multilingualNames(org map[string]any) []schema.MultilingualName {
	var res []schema.MultilingualName
	for _, mk := range multilingualKeys {
		for i, v := range nested.Slice(org, mk.key) {
			name := scalarOr(v, "name")
			if name == nil {
				continue
			}
			res = append(res, schema.MultilingualName{
				Name:          *name,
				NameType:      mk.nameType,
				Language:      coded(v, "language"),
				WritingScript: coded(v, "writingScript"),
				Priority:      priority(v, i),
			})
		}
	}
	return res
}

func websiteAddresses(org map[string]any) []schema.WebsiteAddress {
	var res []schema.WebsiteAddress
	for i, v := range nested.Slice(org, "websiteAddress") {
		url := scalarOr(v, "url")
		if url == nil {
			continue
		}
		res = append(res, schema.WebsiteAddress{
			URL:        *url,
			DomainName: str(v, "domainName"),
			Priority:   priority(v, i),
		})
	}
	return res
}

func telephoneNumbers(org map[string]any) []schema.TelephoneNumber {
	var res []schema.TelephoneNumber
	for i, v := range nested.Slice(org, "telephone") {
		num := scalarOr(v, "telephoneNumber")
		if num == nil {
			continue
		}
		res = append(res, schema.TelephoneNumber{
			TelephoneNumber:          *num,
			InternationalDialingCode: str(v, "isdCode"),
			IsUnreachable:            nested.Bool(v, "isUnreachable"),
			Priority:                 priority(v, i),
		})
	}
	return res
}

// emailAddresses reads both the email and emailAddresses fields, either
// of which can hold bare strings or objects. Their order continues from
// one field to the other.
func emailAddresses(org map[string]any) []schema.EmailAddress {
	var res []schema.EmailAddress
	var n int
	for _, key := range []string{"email", "emailAddresses"} {
		for _, v := range nested.Slice(org, key) {
			n++
			email := scalarOr(v, "address", "email")
			if email == nil {
				continue
			}
			res = append(res, schema.EmailAddress{
				Email:    *email,
				Priority: priority(v, n-1),
			})
		}
	}
	return res
}

func registrationNumbers(org map[string]any) []schema.RegistrationNumber {
	items, idx := objects(org, "registrationNumbers")
	var res []schema.RegistrationNumber
	for i, v := range items {
		num := str(v, "registrationNumber")
		if num == nil {
			continue
		}
		res = append(res, schema.RegistrationNumber{
			RegistrationNumber:      *num,
			TypeDescription:         str(v, "typeDescription"),
			TypeDnbCode:             nested.Int(v, "typeDnBCode"),
			RegistrationNumberClass: coded(v, "registrationNumberClass"),
			IsPreferred:             nested.Bool(v, "isPreferredRegistrationNumber"),
			RegistrationLocation:    str(v, "registrationLocation", "addressRegion", "name"),
			Priority:                priority(v, idx[i]),
		})
	}
	return res
}

func stockExchanges(org map[string]any) []schema.StockExchange {
	items, idx := objects(org, "stockExchanges")
	res := make([]schema.StockExchange, 0, len(items))
	for i, v := range items {
		res = append(res, schema.StockExchange{
			StockExchangeName:    desc(v, "exchangeName"),
			StockExchangeCode:    str(v, "exchangeCode"),
			TickerSymbol:         str(v, "tickerName"),
			CountryISOAlpha2Code: upper(v, "exchangeCountry", "isoAlpha2Code"),
			IsPrimary:            nested.Bool(v, "isPrimary"),
			Priority:             priority(v, idx[i]),
		})
	}
	return res
}

func banks(org map[string]any) []schema.Bank {
	items, idx := objects(org, "banks")
	res := make([]schema.Bank, 0, len(items))
	for i, v := range items {
		res = append(res, schema.Bank{
			BankName: str(v, "name"),
			BankDUNS: str(v, "duns"),
			Priority: priority(v, idx[i]),
		})
	}
	return res
}

func companyActivities(org map[string]any) []schema.CompanyActivity {
	var res []schema.CompanyActivity
	for i, v := range nested.Slice(org, "activities") {
		d := scalarOr(v, "description")
		if d == nil {
			continue
		}
		res = append(res, schema.CompanyActivity{
			Description: d,
			Language:    coded(v, "language"),
			Priority:    priority(v, i),
		})
	}
	return res
}

func employeeFigures(org map[string]any) []schema.EmployeeFigure {
	items, idx := objects(org, "numberOfEmployees")
	res := make([]schema.EmployeeFigure, 0, len(items))
	for i, v := range items {
		res = append(res, schema.EmployeeFigure{
			Value:               nested.Int(v, "value"),
			MinimumValue:        nested.Int(v, "minimumValue"),
			MaximumValue:        nested.Int(v, "maximumValue"),
			EmployeeFiguresDate: str(v, "employeeFiguresDate"),
			InformationScope:    codedFlat(v, "informationScope"),
			Reliability:         codedFlat(v, "reliability"),
			Priority:            priority(v, idx[i]),
		})
	}
	return res
}

func unspscCodes(org map[string]any) []schema.UNSPSCCode {
	items, idx := objects(org, "unspscCodes")
	res := make([]schema.UNSPSCCode, 0, len(items))
	for i, v := range items {
		res = append(res, schema.UNSPSCCode{
			Code:        str(v, "code"),
			Description: str(v, "description"),
			Priority:    priority(v, idx[i]),
		})
	}
	return res
}
