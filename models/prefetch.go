package models

// PrefetchRequest represents the request body for warming the image cache
type PrefetchRequest struct {
	LastVisibleIndex int  `json:"lastVisibleIndex"`
	Count            int  `json:"count"`
	Width            int  `json:"width"`
	Height           int  `json:"height"`
	Crop             bool `json:"crop"`
	All              bool `json:"all"` // Ignore the window and warm every item
}

// PrefetchResponse represents the response after the fetches were dispatched
type PrefetchResponse struct {
	BatchID     string `json:"batchId"`
	WindowStart int    `json:"windowStart"`
	WindowEnd   int    `json:"windowEnd"`
	Items       int    `json:"items"`
}

// SizedImageResponse represents the response of the sized image URL endpoint
type SizedImageResponse struct {
	URL    string `json:"url"`
	Suffix string `json:"suffix"`
}
