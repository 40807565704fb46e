package validator

import (
	"log"

	"aurum_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("order_status", validateOrderStatus)
	mustRegister("notice_type", validateNoticeType)
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.IsValidOrderStatus(models.OrderStatus(fl.Field().String()))
}

func validateNoticeType(fl validator.FieldLevel) bool {
	return models.IsValidNoticeType(models.NoticeType(fl.Field().String()))
}
