package dto

// ScaleIngestRequest carries the raw pipe-delimited reading pushed by a scale
// device, e.g. "DEV01|ST|0|0|1234.5".
type ScaleIngestRequest struct {
	Payload string `json:"payload" binding:"required"`
}
