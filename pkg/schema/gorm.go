package schema

import (
	"reflect"

	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []any {
	return []any{
		&Company{},

		&CompanyInfo{},
		&IndustryCode{},
		&TradeStyleName{},
		&MultilingualName{},
		&WebsiteAddress{},
		&TelephoneNumber{},
		&EmailAddress{},
		&RegistrationNumber{},
		&StockExchange{},
		&Bank{},
		&CompanyActivity{},
		&EmployeeFigure{},
		&UNSPSCCode{},

		&LegalEventsSummary{},
		&LegalEvent{},
		&LegalEventFiling{},
		&FilingRolePlayer{},
		&FilingReferenceDate{},
		&FilingTextEntry{},

		&AwardsSummary{},
		&Contract{},
		&ContractAction{},
		&ContractCharacteristic{},

		&ExclusionsSummary{},
		&ActiveExclusion{},
		&InactiveExclusion{},

		&SignificantEventsSummary{},
		&SignificantEvent{},
		&SignificantEventTextEntry{},

		&FinancingEventsSummary{},
		&FinancingEvent{},
		&FinancingEventFiling{},

		&ViolationsSummary{},
		&Violation{},

		&FinancialStatement{},
		&FinancialOverview{},
		&BalanceSheetItem{},
		&ProfitLossItem{},
		&CashFlowItem{},
		&FinancialRatio{},

		&LoadRun{},
		&SourceDocument{},
	}
}

// TableNames returns table names of all models in AllModels order.
func TableNames() []string {
	models := AllModels()
	res := make([]string, 0, len(models))
	for _, m := range models {
		if t, ok := m.(tabler); ok {
			res = append(res, t.TableName())
		}
	}
	return res
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

type tabler interface {
	TableName() string
}

var tablerType = reflect.TypeFor[tabler]()

// CountRows returns the number of table rows in a model value, its
// associations included.
func CountRows(v any) int {
	return countRows(reflect.ValueOf(v))
}

func countRows(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return 0
		}
		return countRows(v.Elem())
	case reflect.Slice:
		var res int
		for i := range v.Len() {
			res += countRows(v.Index(i))
		}
		return res
	case reflect.Struct:
		if !v.Type().Implements(tablerType) {
			return 0
		}
		res := 1
		for i := range v.NumField() {
			f := v.Field(i)
			switch f.Kind() {
			case reflect.Pointer, reflect.Slice:
				if isModel(f.Type()) {
					res += countRows(f)
				}
			}
		}
		return res
	}
	return 0
}

func isModel(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t.Implements(tablerType)
}
