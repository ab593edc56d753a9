package dto

type CreateAppointmentRequest struct {
	Day         string `json:"day" validate:"required,oneof=MON TUE WED THU FRI SAT SUN"`
	TimeSlot    string `json:"time_slot" validate:"required,oneof=MORNING AFTERNOON EVENING NIGHT"`
	DurationMin int    `json:"duration_min" validate:"required,min=20,max=480"`
}

type AppointmentResponse struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	TimeSlot    string `json:"time_slot"`
	DurationMin int    `json:"duration_min"`
	CreatedAt   int64  `json:"created_at"`
}
