package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/wheel/internal/common"
	"github.com/dmitrijs2005/wheel/internal/garage"
	"github.com/go-playground/validator/v10"
)

// record is the on-disk shape of a listing, shared by the JSON and YAML
// decoders.
type record struct {
	ID          int64    `json:"id" yaml:"id" validate:"gt=0"`
	Make        string   `json:"make" yaml:"make" validate:"required"`
	Model       string   `json:"model" yaml:"model" validate:"required"`
	Year        int      `json:"year" yaml:"year" validate:"gte=1886"`
	Price       float64  `json:"price" yaml:"price" validate:"gt=0"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features" validate:"dive,feature"`
	Image       string   `json:"img" yaml:"img" validate:"omitempty,url"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("feature", func(fl validator.FieldLevel) bool {
		return garage.IsKnownFeature(fl.Field().String())
	})
	return v
}

func (r record) vehicle() garage.Vehicle {
	return garage.Vehicle{
		ID:          garage.VehicleID(r.ID),
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		Price:       r.Price,
		Description: r.Description,
		Features:    r.Features,
		Image:       r.Image,
	}
}

func fromVehicle(v garage.Vehicle) record {
	return record{
		ID:          int64(v.ID),
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Price:       v.Price,
		Description: v.Description,
		Features:    v.Features,
		Image:       v.Image,
	}
}

// Validate checks every listing and rejects duplicate ids. All problems
// are reported together, wrapped in common.ErrorInvalidArgument.
func Validate(cars []garage.Vehicle) error {
	var problems []string
	seen := make(map[garage.VehicleID]struct{}, len(cars))

	for i, car := range cars {
		if err := validate.Struct(fromVehicle(car)); err != nil {
			problems = append(problems, fmt.Sprintf("record %d: %s", i, formatValidationError(err)))
		}
		if _, dup := seen[car.ID]; dup {
			problems = append(problems, fmt.Sprintf("record %d: duplicate id %d", i, car.ID))
		}
		seen[car.ID] = struct{}{}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrorInvalidArgument, strings.Join(problems, "; "))
	}
	return nil
}

func formatValidationError(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, ", ")
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "feature":
		return fmt.Sprintf("%s has unknown feature %q", field, e.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
