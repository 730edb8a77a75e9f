package dto

// ConvertResult is the rendered document plus the filename the host
// should offer for download.
type ConvertResult struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

// IndexResponse lists the selectable extras for building a settings UI.
type IndexResponse struct {
	GlidingSites []string `json:"gliding_sites"`
	Rat          []string `json:"rat"`
	Loa          []string `json:"loa"`
	Wave         []string `json:"wave"`
}

// ReleaseResponse exposes the dataset's release metadata.
type ReleaseResponse struct {
	AiracDate     string `json:"airac_date"`
	Note          string `json:"note"`
	SchemaVersion int    `json:"schema_version"`
	Commit        string `json:"commit"`
}
