package document

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/gnames/datablock/pkg/nested"
	"github.com/go-playground/validator/v10"
)

const dunsLength = 9

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewKey extracts and validates the natural key of an organization.
// A DUNS that arrives as a JSON number is left-padded with zeros.
// An invalid country code is dropped, an invalid DUNS is an error.
func NewKey(org map[string]any) (Key, error) {
	var res Key
	duns := nested.String(org, "duns")
	if duns == nil {
		return res, NoKeyError("")
	}
	res.DUNS = *duns
	if _, ok := org["duns"].(json.Number); ok && len(res.DUNS) < dunsLength {
		res.DUNS = strings.Repeat("0", dunsLength-len(res.DUNS)) + res.DUNS
	}

	if name := nested.String(org, "primaryName"); name != nil {
		res.PrimaryName = *name
	}
	if cc := nested.String(org, "countryISOAlpha2Code"); cc != nil {
		res.Country = strings.ToUpper(*cc)
	}

	err := validate.Struct(res)
	if err == nil {
		return res, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return res, InvalidKeyError(res.DUNS, err)
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "DUNS":
			return Key{}, InvalidKeyError(res.DUNS, fe)
		case "Country":
			slog.Warn("Ignoring invalid country code",
				"duns", res.DUNS, "country", res.Country)
			res.Country = ""
		}
	}
	return res, nil
}
