package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/model"
	"github.com/amslowed786-cyber/Earn-With-Tasker/internal/service"
)

type LoginRequest struct {
	Phone        string `json:"phone" validate:"required,max=32"`
	ReferralCode string `json:"referralCode" validate:"max=32"`
}

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

type CreateTaskRequest struct {
	Title  string           `json:"title" validate:"required,max=120"`
	Type   model.TaskType   `json:"type" validate:"omitempty,oneof=INSTALL WATCH CHECKIN SHARE"`
	Reward *decimal.Decimal `json:"reward"`
}

type AddBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseRequest decodes and validates the JSON body into req. Failures wrap
// service.ErrValidation.
func parseRequest(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("%w: invalid request body", service.ErrValidation)
	}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed on %s", service.ErrValidation, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", service.ErrValidation, err)
	}
	return nil
}
