package worklog

import (
	"github.com/hoursly/worklog-portal/internal/pkg/daterange"
	"github.com/hoursly/worklog-portal/internal/pkg/validator"
)

// MaxHoursPerEntry bounds a single entry. Hours must be positive; one entry
// may span at most a full calendar day (overtime is allowed, multi-day
// entries are not).
const MaxHoursPerEntry = 24

const maxDescriptionLength = 500

// ========================================
// WORKLOG DTOs
// ========================================

type CreateRequest struct {
	WorkDate    string  `json:"work_date"`
	HoursWorked float64 `json:"hours_worked"`
	WorkType    string  `json:"work_type"`
	Project     *string `json:"project,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.HoursWorked <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must be greater than 0",
		})
	} else if r.HoursWorked > MaxHoursPerEntry {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_worked",
			Message: "hours_worked must not exceed 24",
		})
	}

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	}

	if r.Description != nil && len(*r.Description) > maxDescriptionLength {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRequest replaces every mutable field of an existing worklog.
type UpdateRequest struct {
	WorkDate    string  `json:"work_date"`
	HoursWorked float64 `json:"hours_worked"`
	WorkType    string  `json:"work_type"`
	Project     *string `json:"project,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	create := CreateRequest{
		WorkDate:    r.WorkDate,
		HoursWorked: r.HoursWorked,
		WorkType:    r.WorkType,
		Project:     r.Project,
		Description: r.Description,
	}
	return create.Validate()
}

// DayGroup is one calendar date of the viewer's worklog list with its
// summed hours.
type DayGroup struct {
	Date       string    `json:"date"`
	TotalHours float64   `json:"total_hours"`
	Worklogs   []Worklog `json:"worklogs"`
}

// ListResponse is the view model behind the personal worklog page: the
// period header, date-grouped entries and the work-type catalogue the entry
// form offers.
type ListResponse struct {
	Period   daterange.Info `json:"period"`
	Days     []DayGroup     `json:"days"`
	Worklogs []Worklog      `json:"worklogs"`
	Types    []Type         `json:"types"`
}
