package model

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrNothingToUpdate = errors.New("nothing to update")

type fieldKind int

const (
	stringField fieldKind = iota
	numberField
)

// applicationPatchAllowed is the allow-list for the generic application
// patch. Lifecycle fields (applicationStatus, paymentStatus, feedback) and
// trackingId are deliberately absent: they only move through the moderation,
// feedback and payment handlers.
var applicationPatchAllowed = map[string]fieldKind{
	"userName":            stringField,
	"universityName":      stringField,
	"scholarshipCategory": stringField,
	"degree":              stringField,
	"applicationFees":     numberField,
	"serviceCharge":       numberField,
}

var scholarshipPatchAllowed = map[string]fieldKind{
	"scholarshipName":     stringField,
	"universityName":      stringField,
	"universityCountry":   stringField,
	"universityCity":      stringField,
	"universityImage":     stringField,
	"subjectCategory":     stringField,
	"scholarshipCategory": stringField,
	"degree":              stringField,
	"universityWorldRank": numberField,
	"tuitionFees":         numberField,
	"applicationFees":     numberField,
	"serviceCharge":       numberField,
}

func FilterApplicationPatch(updates map[string]interface{}) (map[string]interface{}, error) {
	return filterPatch(applicationPatchAllowed, updates)
}

func FilterScholarshipPatch(updates map[string]interface{}) (map[string]interface{}, error) {
	return filterPatch(scholarshipPatchAllowed, updates)
}

// filterPatch drops empty values, coerces numbers and rejects any field
// outside the allow-list.
func filterPatch(allowed map[string]fieldKind, updates map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	for key, value := range updates {
		kind, ok := allowed[key]
		if !ok {
			return nil, fmt.Errorf("field %q is not patchable", key)
		}
		if value == nil {
			continue
		}
		switch kind {
		case stringField:
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("field %q must be a string", key)
			}
			if s == "" {
				continue
			}
			out[key] = s
		case numberField:
			switch n := value.(type) {
			case float64:
				out[key] = n
			case string:
				if n == "" {
					continue
				}
				parsed, err := strconv.ParseFloat(n, 64)
				if err != nil {
					return nil, fmt.Errorf("field %q must be a number", key)
				}
				out[key] = parsed
			default:
				return nil, fmt.Errorf("field %q must be a number", key)
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrNothingToUpdate
	}
	return out, nil
}
