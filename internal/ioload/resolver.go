package ioload

import (
	"time"

	"github.com/gnames/datablock/pkg/document"
	"github.com/gnames/datablock/pkg/schema"
	"gorm.io/gorm"
)

// Resolve returns the companies row of a key, creating it on first
// sight. Display attributes of an existing row are replaced only by
// non-empty values of the key.
func Resolve(tx *gorm.DB, key document.Key) (*schema.Company, error) {
	var res schema.Company
	err := tx.Where("duns = ?", key.DUNS).Limit(1).Find(&res).Error
	if err != nil {
		return nil, ResolveCompanyError(key.DUNS, err)
	}

	if res.ID == 0 {
		res = schema.Company{
			DUNS:                 key.DUNS,
			PrimaryName:          nonEmpty(key.PrimaryName),
			CountryISOAlpha2Code: nonEmpty(key.Country),
		}
		if err = tx.Create(&res).Error; err != nil {
			return nil, ResolveCompanyError(key.DUNS, err)
		}
		return &res, nil
	}

	now := time.Now()
	updates := map[string]any{"updated_at": now}
	if key.PrimaryName != "" {
		updates["primary_name"] = key.PrimaryName
		res.PrimaryName = &key.PrimaryName
	}
	if key.Country != "" {
		updates["country_iso_alpha2_code"] = key.Country
		res.CountryISOAlpha2Code = &key.Country
	}

	err = tx.Model(&schema.Company{}).Where("id = ?", res.ID).Updates(updates).Error
	if err != nil {
		return nil, ResolveCompanyError(key.DUNS, err)
	}
	res.UpdatedAt = now
	return &res, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
