package models

// DashboardStats mirrors GET /admin/dashboard-stats.
type DashboardStats struct {
	Users     int `json:"users"`
	Words     int `json:"words"`
	Articles  int `json:"articles"`
	Questions int `json:"questions"`
}

// BulkImportResult summarizes POST /admin/words/bulk. Rows the server could
// not import come back as error strings; silent duplicates are not counted.
type BulkImportResult struct {
	Status  string   `json:"status"`
	Created int      `json:"created"`
	Errors  []string `json:"errors"`
}
