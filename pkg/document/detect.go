package document

import (
	"github.com/gnames/datablock/pkg/nested"
)

var financialKeys = []string{
	"latestFiscalFinancials",
	"otherFinancials",
}

var eventsKeys = []string{
	"legalEvents",
	"awards",
	"exclusions",
	"significantEvents",
	"financingEvents",
	"violations",
}

var companyInfoKeys = []string{
	"industryCodes",
	"tradeStyleNames",
	"primaryAddress",
	"mailingAddress",
	"registeredAddress",
	"dunsControlStatus",
	"registrationNumbers",
	"telephone",
	"websiteAddress",
	"email",
	"isStandalone",
	"businessEntityType",
	"legalForm",
	"numberOfEmployees",
	"startDate",
	"incorporatedDate",
}

// DetectCategory finds the category of a decoded document. The vendor
// block ID in inquiryDetail wins, then the shape of the organization
// object, then the caller's hint.
func DetectCategory(root map[string]any, hint string) (Category, bool) {
	if id := nested.String(root, "inquiryDetail", "blockIDs", 0); id != nil {
		if cat, ok := ParseCategory(*id); ok {
			return cat, true
		}
	}

	if cat, ok := categoryByShape(nested.Map(root, "organization")); ok {
		return cat, true
	}

	return ParseCategory(hint)
}

func categoryByShape(org map[string]any) (Category, bool) {
	if org == nil {
		return "", false
	}

	if nested.Has(org, "financials", "financialStatements") {
		return Financials, true
	}
	for _, k := range financialKeys {
		if _, ok := org[k]; ok {
			return Financials, true
		}
	}

	for _, k := range eventsKeys {
		if _, ok := org[k]; ok {
			return EventsFilings, true
		}
	}

	for _, k := range companyInfoKeys {
		if _, ok := org[k]; ok {
			return CompanyInfo, true
		}
	}
	return "", false
}
