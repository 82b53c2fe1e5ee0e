package dto

type ExportOutput struct {
	Dir     string
	Files   []string
	BaseURL string
}
