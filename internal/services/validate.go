package services

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	reUsername = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	reEmail    = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,}$`)
	rePhone    = regexp.MustCompile(`^\d{9,11}$`)
	reLetter   = regexp.MustCompile(`[A-Za-z]`)
	reDigit    = regexp.MustCompile(`[0-9]`)
	reSpecial  = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// newValidator builds the validator shared by the services, with the store's
// custom rules registered.
func newValidator() *validator.Validate {
	v := validator.New()

	// 3-20 characters, letters/digits/underscore only.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return reUsername.MatchString(fl.Field().String())
	})
	// At least 6 characters containing a letter, a digit and a special
	// character.
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) >= 6 && reLetter.MatchString(s) && reDigit.MatchString(s) && reSpecial.MatchString(s)
	})
	_ = v.RegisterValidation("storeemail", func(fl validator.FieldLevel) bool {
		return reEmail.MatchString(fl.Field().String())
	})
	// Digits only, 9-11 of them.
	_ = v.RegisterValidation("localphone", func(fl validator.FieldLevel) bool {
		return rePhone.MatchString(fl.Field().String())
	})

	return v
}

// validationMessages maps struct-qualified field names to the user-facing
// message for their failing rule, so same-named fields on different structs
// cannot pick up each other's message. The first failing field wins, in
// struct order, which matches the original check order.
var validationMessages = map[string]string{
	"User.Username":    "username must be 3-20 characters of letters, digits or underscore",
	"User.Password":    "password must be at least 6 characters and contain a letter, a digit and a special character",
	"User.Email":       "invalid email",
	"User.Phone":       "invalid phone number (digits only, 9-11 digits)",
	"Address.FullName": "recipient name must be at least 3 characters",
	"Address.Phone":    "invalid phone number (digits only, 9-11 digits)",
	"Address.Street":   "street must be at least 5 characters",
	"Address.City":     "city must be at least 2 characters",
	"Review.Rating":    "rating must be between 1 and 5",
	"Product.Name":     "name is required",
	"Product.Price":    "price must be greater than zero",
	"Category.Name":    "name is required",
}

// firstValidationError converts a validator error into the domain's
// ValidationError carrying only the first failing rule.
func firstValidationError(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{Field: "input", Message: err.Error()}
	}
	msg, ok := validationMessages[verrs[0].StructNamespace()]
	if !ok {
		msg = "invalid value"
	}
	return &ValidationError{Field: verrs[0].Field(), Message: msg}
}
