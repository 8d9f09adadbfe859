package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PeriodDTO rango efectivo de un reporte, en la zona configurada.
type PeriodDTO struct {
	Key      string `json:"key"`      // 1m, 3m, 6m, 12m o custom
	From     string `json:"from"`     // YYYY-MM-DD
	To       string `json:"to"`       // YYYY-MM-DD
	Timezone string `json:"timezone"` // zona IANA usada para días y meses
}
