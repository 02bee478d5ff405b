// Package tourform holds the acceptance rules for a tour before it is stored,
// and the mapping between the authored record and a tours table row.
package tourform

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/tourbook/backend/internal/dates"
	"github.com/pkordes/tourbook/backend/internal/domain"
)

// Tags registered on top of the validator built-ins.
const (
	tagCalendarDate = "calendar_date"
	tagDateRange    = "date_range"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so error keys match what the form sends.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// A CalendarDate is validated as its storage string; the zero date is
	// presented as nil so that "required" fails on it.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(dates.CalendarDate)
		if !ok || d.IsZero() {
			return nil
		}
		return dates.ToStorageString(d)
	}, dates.CalendarDate{})

	if err := v.RegisterValidation(tagCalendarDate, func(fl validator.FieldLevel) bool {
		_, err := dates.FromStorageString(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("tourform: register %s: %v", tagCalendarDate, err))
	}

	v.RegisterStructValidation(validateDateRange, domain.Tour{})
	return v
}

// validateDateRange is the cross-field rule: the tour may not end before it
// starts. It only runs its comparison when both dates are usable; missing or
// malformed dates are already reported by their own field rules.
func validateDateRange(sl validator.StructLevel) {
	t := sl.Current().Interface().(domain.Tour)
	if !t.StartDate.IsValid() || !t.EndDate.IsValid() {
		return
	}
	if !dates.ValidateRange(t.StartDate, t.EndDate) {
		sl.ReportError(t.EndDate, "endDate", "EndDate", tagDateRange, "")
	}
}

// Validate checks t against every form rule and returns it unchanged when all
// of them hold. Otherwise it returns a *domain.ValidationError listing every
// violation, not just the first.
func Validate(t domain.Tour) (domain.Tour, error) {
	err := validate.Struct(t)
	if err == nil {
		return t, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.Tour{}, fmt.Errorf("tourform.Validate: %w", err)
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		verr.Add(path, message(path, fe.Tag(), fe.Param()))
	}
	return domain.Tour{}, verr
}

// ValidateInput is Validate for a tour decoded from text input. inputErrs
// holds the fields that could not be parsed and were left unset; they are
// reported first, followed by every rule violation on the rest of the tour.
// A field already in inputErrs is not reported again (an unparsed date is
// not also "required").
func ValidateInput(t domain.Tour, inputErrs *domain.ValidationError) (domain.Tour, error) {
	got, err := Validate(t)
	if inputErrs.ErrOrNil() == nil {
		return got, err
	}

	merged := &domain.ValidationError{Fields: append([]domain.FieldError{}, inputErrs.Fields...)}
	if err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return domain.Tour{}, err
		}
		for _, f := range verr.Fields {
			if !inputErrs.Has(f.Field) {
				merged.Fields = append(merged.Fields, f)
			}
		}
	}
	return domain.Tour{}, merged
}

// fieldPath drops the leading struct name from a validator namespace:
// "Tour.itinerary[0].notes" becomes "itinerary[0].notes".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
