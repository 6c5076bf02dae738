package datafeed

// Pointer is the latest.json record identifying the current snapshot. It is
// produced by the collector and consumed once per page render.
type Pointer struct {
	URL  string `json:"url"`
	Date string `json:"date"`
	File string `json:"file"`
}
