package request

import (
	"sync"

	"resource-scheduler/internal/domain/schedule"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the scheduling tags to gin's validator:
// hhmm accepts "15:04" or "15:04:05", weekday accepts 1 (Monday) to 7 (Sunday).
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("hhmm", validateHHMM)
		_ = v.RegisterValidation("weekday", validateWeekday)
	})
}

func validateHHMM(fl validator.FieldLevel) bool {
	_, err := schedule.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	return schedule.Weekday(fl.Field().Int()).IsValid()
}
