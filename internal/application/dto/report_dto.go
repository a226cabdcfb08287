package dto

// ReportRequest parámetros para GET /api/reports/:type y para el comando report de la CLI.
type ReportRequest struct {
	Type      string `params:"type"`
	Period    string `query:"period"`     // today|yesterday|this_week|...|custom; alias en español
	StartDate string `query:"start_date"` // YYYY-MM-DD; con EndDate define un período personalizado
	EndDate   string `query:"end_date"`   // YYYY-MM-DD
	Format    string `query:"format"`     // json (por defecto), pdf, xlsx
	BranchID  string `query:"-"`          // lo completa el middleware a partir del token
}

// ReportFile reporte exportado listo para descargar.
type ReportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
