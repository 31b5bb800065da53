package worklog

// Worklog is one record of hours worked by one employee on one calendar
// date. An employee may have several records per date; views group by date
// and sum. Owned by the backend, treated as an immutable snapshot here.
type Worklog struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	WorkDate    string  `json:"work_date"` // YYYY-MM-DD
	HoursWorked float64 `json:"hours_worked"`
	WorkType    string  `json:"work_type"`
	Project     *string `json:"project,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Type is one entry of the backend's work-type catalogue.
type Type struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
