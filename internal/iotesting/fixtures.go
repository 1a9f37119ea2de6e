package iotesting

import (
	"encoding/json"
	"fmt"
	"testing"
)

// AcmeDUNS is the DUNS used by the fixtures.
const AcmeDUNS = "540924028"

// JSON marshals a fixture document.
func JSON(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	res, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal fixture: %v", err)
	}
	return res
}

func inquiry(blockID string) map[string]any {
	return map[string]any{
		"blockIDs":    []any{blockID},
		"tradeUp":     "hq",
		"orderReason": "6332",
	}
}

// CompanyInfoDoc returns a company info document with the given number of
// industry codes and two trade style names.
func CompanyInfoDoc(duns, name string, industryCodes int) map[string]any {
	codes := make([]any, 0, industryCodes)
	for i := range industryCodes {
		codes = append(codes, map[string]any{
			"code":            fmt.Sprintf("54%02d", 11+i),
			"description":     fmt.Sprintf("Industry %d", i+1),
			"typeDescription": "North American Industry Classification System 2022",
			"typeDnBCode":     30832,
			"priority":        i + 1,
		})
	}

	org := map[string]any{
		"duns":                                  duns,
		"primaryName":                           name,
		"countryISOAlpha2Code":                  "US",
		"registeredName":                        name + " Incorporated",
		"isStandalone":                          false,
		"isFortune1000Listed":                   false,
		"isForbesLargestPrivateCompaniesListed": false,
		"isAgent":                               false,
		"isImporter":                            true,
		"isExporter":                            true,
		"startDate":                             "1998",
		"incorporatedDate":                      "1998-03-17",
		"fiscalYearEnd":                         "12-31",
		"defaultCurrency":                       "USD",
		"businessEntityType":                    map[string]any{"description": "Corporation", "dnbCode": 451},
		"legalForm": map[string]any{
			"description": "Corporation (US)", "dnbCode": 1101,
			"startDate": "1998",
		},
		"controlOwnershipType": map[string]any{"description": "Private", "dnbCode": 9058},
		"controlOwnershipDate": "2001-05",
		"dunsControlStatus": map[string]any{
			"operatingStatus": map[string]any{
				"description": "Active", "dnbCode": 9074,
				"startDate": "2010-01-01",
			},
			"isMarketable":            true,
			"isMailUndeliverable":     false,
			"isTelephoneDisconnected": nil,
			"isDelisted":              false,
			"firstReportDate":         "1998-05-01",
			"recordClass": map[string]any{
				"description": "Full Record", "dnbCode": 7,
			},
		},
		"primaryAddress": map[string]any{
			"streetAddress":   map[string]any{"line1": "1 Main St", "line2": nil},
			"addressLocality": map[string]any{"name": "Springfield"},
			"addressRegion": map[string]any{
				"name": "Illinois", "abbreviatedName": "IL",
			},
			"postalCode":     "62701",
			"addressCountry": map[string]any{"name": "United States", "isoAlpha2Code": "US"},
			"latitude":       39.7817,
			"longitude":      -89.6501,
		},
		"mailingAddress": map[string]any{
			"streetAddress":   map[string]any{"line1": "PO Box 10"},
			"addressLocality": map[string]any{"name": "Springfield"},
			"postalCode":      "62705",
			"addressCountry":  map[string]any{"isoAlpha2Code": "US"},
		},
		"industryCodes": codes,
		"tradeStyleNames": []any{
			"ACME",
			map[string]any{"name": "Acme Tools"},
		},
		"multilingualPrimaryName": []any{
			map[string]any{
				"name":     name,
				"language": map[string]any{"description": "English", "dnbCode": 331},
			},
		},
		"websiteAddress": []any{
			map[string]any{"url": "https://www.acme.example", "domainName": "acme.example"},
		},
		"telephone": []any{
			map[string]any{"telephoneNumber": "2175550100", "isdCode": "1", "isUnreachable": false},
		},
		"email": []any{
			"info@acme.example",
			map[string]any{"email": "sales@acme.example"},
		},
		"registrationNumbers": []any{
			map[string]any{
				"registrationNumber":            "36-1234567",
				"typeDescription":               "Federal Taxpayer Identification Number (US)",
				"typeDnBCode":                   6863,
				"isPreferredRegistrationNumber": true,
			},
		},
		"stockExchanges": []any{
			map[string]any{
				"tickerName":      "ACME",
				"exchangeName":    map[string]any{"description": "New York Stock Exchange"},
				"exchangeCountry": map[string]any{"isoAlpha2Code": "US"},
				"isPrimary":       true,
			},
		},
		"banks": []any{
			map[string]any{"name": "First Bank of Springfield", "duns": "123456789"},
		},
		"activities": []any{
			map[string]any{
				"description": "Manufactures hand tools",
				"language":    map[string]any{"description": "English", "dnbCode": 331},
			},
		},
		"numberOfEmployees": []any{
			map[string]any{
				"value":                       120,
				"informationScopeDescription": "Consolidated",
				"informationScopeDnBCode":     9067,
				"reliabilityDescription":      "Actual",
				"reliabilityDnBCode":          9092,
			},
		},
		"unspscCodes": []any{
			map[string]any{"code": "27111600", "description": "Hand tools"},
		},
	}

	return map[string]any{
		"transactionDetail": map[string]any{"transactionID": "rrt-0"},
		"inquiryDetail":     inquiry("companyinfo_L2_v1"),
		"organization":      org,
	}
}

func filing(n int) map[string]any {
	return map[string]any{
		"isStopD":    false,
		"filingType": map[string]any{"description": "Federal Tax Lien", "dnbCode": 13},
		"filingDate": fmt.Sprintf("2020-0%d-15", n),
		"statusDate": "2021-01-10",
		"status":     map[string]any{"description": "Open", "dnbCode": 1},
		"filingAmount": map[string]any{
			"value": 1000.0 * float64(n), "currency": "USD",
		},
		"filingReference": fmt.Sprintf("REF-%d", n),
		"rolePlayers": []any{
			map[string]any{
				"rolePlayerType": map[string]any{"description": "Debtor", "dnbCode": 1},
				"name":           "Acme Co",
				"duns":           AcmeDUNS,
				"address": map[string]any{
					"streetAddress":   map[string]any{"line1": "1 Main St"},
					"addressLocality": map[string]any{"name": "Springfield"},
					"addressRegion":   map[string]any{"name": "Illinois"},
					"postalCode":      "62701",
					"addressCountry":  map[string]any{"isoAlpha2Code": "US"},
				},
			},
			map[string]any{
				"rolePlayerType": map[string]any{"description": "Creditor", "dnbCode": 2},
				"name":           "Internal Revenue Service",
			},
		},
		"referenceDates": []any{
			map[string]any{
				"referenceType": map[string]any{"description": "Lapse Date", "dnbCode": 3},
				"referenceDate": "2030-01-15",
			},
		},
		"textEntry": []any{
			map[string]any{"text": "Lien recorded", "typeDescription": "Note", "typeDnBCode": 5},
		},
	}
}

// EventsFilingsDoc returns an events and filings document with the given
// number of lien filings. Every section is present.
func EventsFilingsDoc(duns string, lienFilings int) map[string]any {
	filings := make([]any, 0, lienFilings)
	for i := range lienFilings {
		filings = append(filings, filing(i+1))
	}

	legal := map[string]any{
		"hasLegalEvents": true,
		"hasLiens":       true,
		"hasOpenLiens":   true,
		"hasSuits":       true,
		"hasJudgments":   false,
		"hasBankruptcy":  false,
		"hasClaims":      false,
		"liens": map[string]any{
			"mostRecentFilingDate": "2020-03-15",
			"openCount":            lienFilings,
			"openAmount":           map[string]any{"value": 125000.5, "currency": "USD"},
			"periodSummary": []any{
				map[string]any{"period": "P12M", "count": lienFilings},
			},
			"filings": filings,
		},
		"suits": map[string]any{
			"mostRecentFilingDate": "2019-11",
			"openCount":            1,
			"filings": []any{
				map[string]any{
					"filingType": map[string]any{"description": "Suit", "dnbCode": 20},
					"filingDate": "2019-11-02",
					"court":      map[string]any{"name": "Sangamon County Court"},
				},
			},
		},
	}

	awards := map[string]any{
		"hasContracts":             true,
		"hasOpenContracts":         true,
		"hasLoans":                 false,
		"obligatedContractsAmount": map[string]any{"value": 50000, "currency": "USD"},
		"totalContractsAmount":     map[string]any{"value": 75000},
		"totalOpenContractsCount":  1,
		"mostRecentContractDate":   "2022-06-30",
		"contracts": []any{
			map[string]any{
				"awardID":          "W91-22-C-0001",
				"awardDescription": "Hand tools supply",
				"contractID":       "C-1",
				"contractType":     map[string]any{"code": "D", "description": "Definitive Contract"},
				"baseAndAllOptionsAmount": map[string]any{
					"value": 75000, "currency": "USD",
				},
				"fundingAgency": map[string]any{"code": "2100", "description": "Dept of the Army"},
				"actions": []any{
					map[string]any{
						"actionDate":           "2022-06-30",
						"actionFiscalYear":     2022,
						"federalFundingAmount": map[string]any{"value": 50000, "currency": "USD"},
					},
				},
				"characteristics": []any{
					map[string]any{"description": "Small Business", "dnbCode": 27},
				},
			},
		},
	}

	exclusions := map[string]any{
		"hasActiveExclusions":     true,
		"hasInactiveExclusions":   true,
		"activeExclusionsCount":   1,
		"inactiveExclusionsCount": 1,
		"activeExclusions": []any{
			map[string]any{
				"samRecordNumber":    "S4MR3R9FN",
				"cageCode":           "1ABC2",
				"classificationType": map[string]any{"description": "Firm"},
				"agencyName":         "GSA",
				"effectiveDate":      "2023-01-01",
				"expirationDate":     "2026-01-01",
			},
		},
		"inactiveExclusions": []any{
			map[string]any{
				"samRecordNumber": "S4MR3R9FM",
				"agencyName":      "DOD",
				"effectiveDate":   "2015-01-01",
				"expirationDate":  "2018-01-01",
			},
		},
	}

	significant := map[string]any{
		"hasSignificantEvents": true,
		"hasFireOccurred":      true,
		"hasCEOChange":         false,
		"events": []any{
			map[string]any{
				"eventDate":    "2021-08-09",
				"eventType":    map[string]any{"description": "Fire", "dnbCode": 16},
				"impactAmount": map[string]any{"value": 20000, "currency": "USD"},
				"dataProvider": map[string]any{"description": "Dun & Bradstreet"},
				"textEntry": []any{
					map[string]any{"text": "Warehouse fire", "priority": 1},
					map[string]any{"text": "No injuries", "priority": 2},
				},
			},
		},
	}

	financing := map[string]any{
		"hasFinancingEvents":   true,
		"hasSecuredFilings":    true,
		"mostRecentFilingDate": "2022-02-01",
		"totalFilingsCount":    1,
		"totalSecuredAmount":   map[string]any{"value": 300000, "currency": "USD"},
		"events": []any{
			map[string]any{
				"filingType":        map[string]any{"description": "UCC Filing", "dnbCode": 40},
				"totalFilingsCount": 1,
				"filings": []any{
					map[string]any{
						"filingNumber":          "UCC-9",
						"filingDate":            "2022-02-01",
						"securedParty":          map[string]any{"name": "First Bank of Springfield"},
						"collateralDescription": "Equipment",
						"collateralAmount": map[string]any{
							"value": 300000, "currency": "USD",
						},
						"isActive": true,
					},
				},
			},
		},
	}

	violations := map[string]any{
		"hasOSHAViolations":        true,
		"totalOSHAViolationsCount": 1,
		"mostRecentViolationDate":  "2020-10-01",
		"violations": []any{
			map[string]any{
				"violationType":  map[string]any{"description": "Safety", "dnbCode": 5},
				"agencyName":     "OSHA",
				"violationDate":  "2020-10-01",
				"initialPenalty": map[string]any{"value": 5000, "currency": "USD"},
				"status":         map[string]any{"description": "Closed"},
			},
		},
	}

	org := map[string]any{
		"duns":                 duns,
		"primaryName":          "Acme Co",
		"countryISOAlpha2Code": "US",
		"legalEvents":          legal,
		"awards":               awards,
		"exclusions":           exclusions,
		"significantEvents":    significant,
		"financingEvents":      financing,
		"violations":           violations,
	}

	return map[string]any{
		"inquiryDetail": inquiry("eventfilings_L4_v1"),
		"organization":  org,
	}
}

func statement(duns string, year, items int) map[string]any {
	assets := make([]any, 0, items)
	for i := range items {
		assets = append(assets, map[string]any{
			"itemKey":        map[string]any{"description": fmt.Sprintf("Asset %d", i+1), "dnbCode": 100 + i},
			"value":          1000.25 * float64(i+1),
			"itemGroupLevel": 20,
		})
	}
	return map[string]any{
		"financialStatementToDate":   fmt.Sprintf("%d-12-31", year),
		"financialStatementFromDate": fmt.Sprintf("%d-01-01", year),
		"financialStatementDuration": "P12M",
		"currency":                   "USD",
		"units":                      "Single Units",
		"isFiscal":                   true,
		"isAudited":                  true,
		"dataProvider":               map[string]any{"description": "Annual Report", "dnbCode": 9001},
		"reliability":                map[string]any{"description": "Actual", "dnbCode": 9092},
		"overview": map[string]any{
			"salesRevenue":     1250000.5,
			"totalAssets":      800000,
			"totalLiabilities": 300000,
			"netWorth":         500000,
			"currentRatio":     1.75,
		},
		"balanceSheet": map[string]any{
			"assets": map[string]any{"statementItems": assets},
			"liabilities": map[string]any{"statementItems": []any{
				map[string]any{
					"itemKey": map[string]any{"description": "Accounts payable", "dnbCode": 200},
					"value":   300000,
				},
			}},
		},
		"profitAndLossStatement": map[string]any{"statementItems": []any{
			map[string]any{
				"itemKey": map[string]any{"description": "Sales", "dnbCode": 300},
				"value":   1250000.5, "priority": 1, "itemGroupLevel": 10,
			},
		}},
		"cashFlowStatement": map[string]any{"statementItems": []any{
			map[string]any{
				"itemKey": map[string]any{"description": "Net cash", "dnbCode": 400},
				"value":   5000,
			},
		}},
		"financialRatios": map[string]any{"statementItems": []any{
			map[string]any{
				"itemKey":              map[string]any{"description": "Quick ratio", "dnbCode": 500},
				"value":                1.2,
				"relativeIndustryRank": 0.35,
			},
		}},
	}
}

// FinancialsDoc returns a financials document with the latest fiscal
// statement and the given number of other statements.
func FinancialsDoc(duns string, others int) map[string]any {
	other := make([]any, 0, others)
	for i := range others {
		other = append(other, statement(duns, 2020-i, 1))
	}
	org := map[string]any{
		"duns":                   duns,
		"primaryName":            "Acme Co",
		"countryISOAlpha2Code":   "US",
		"latestFiscalFinancials": statement(duns, 2023, 3),
		"otherFinancials":        other,
	}
	return map[string]any{
		"inquiryDetail": inquiry("companyfinancials_L1_v3"),
		"organization":  org,
	}
}
