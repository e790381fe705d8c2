package packets

type UpdateEidRequest struct {
	Namaz    string `json:"namaz" binding:"required"`
	Datetime string `json:"datetime" binding:"required"`
}

type UpdateTaraweehRequest struct {
	StartDate string `json:"taraweeh_start_date" binding:"required"`
	EndDate   string `json:"taraweeh_end_date" binding:"required"`
	Time      string `json:"taraweeh_time" binding:"required"`
}

type UpdateMosqueRequest struct {
	Name      string   `json:"mosque_name" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type SetActiveThemeRequest struct {
	Active string `json:"active" binding:"required"`
}
