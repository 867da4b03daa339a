package store

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"school-stats/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their dataset names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateEntry appends one error per problem of entry i to result.
func validateEntry(result *multierror.Error, i int, entry *models.RawEntry) *multierror.Error {
	err := validate.Struct(entry)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return multierror.Append(result, errors.Wrapf(err, "entry %d", i))
	}
	for _, fe := range fieldErrs {
		result = multierror.Append(result, errors.Errorf("entry %d: %s", i, describe(fe)))
	}
	return result
}

func describe(fe validator.FieldError) string {
	// Namespace is "RawEntry.statistics.id"; drop the type name.
	_, path, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "gte":
		return path + " must be >= " + fe.Param()
	default:
		return path + " failed " + fe.Tag()
	}
}

// checkActive verifies the count invariants of an active entry.
func checkActive(result *multierror.Error, i int, st *models.RawStatistics) *multierror.Error {
	students := *st.EighthGradeStudentsCount
	finished := *st.FinishedSchoolStudentsCount
	vukova := *st.HasVukovaDiplomaStudentsCount

	if finished > students {
		result = multierror.Append(result, errors.Errorf(
			"entry %d: finishedSchoolStudentsCount %d exceeds eighthGradeStudentsCount %d", i, finished, students))
	}
	if vukova > finished {
		result = multierror.Append(result, errors.Errorf(
			"entry %d: hasVukovaDiplomaStudentsCount %d exceeds finishedSchoolStudentsCount %d", i, vukova, finished))
	}
	return result
}
