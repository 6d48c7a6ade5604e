package domain

// RawEventRecord is one unvalidated candidate event from a bulk source.
// Keys may carry stray quote characters and whitespace from sloppy
// exports; the ingestion pipeline normalizes them before use.
type RawEventRecord map[string]string

type IngestSuccess struct {
	Row     int    `json:"row"`
	Name    string `json:"name"`
	EventID string `json:"event_id"`
}

type IngestFailure struct {
	Row   int    `json:"row"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// IngestSummary accounts for every record of a bulk run: each record ends
// up in exactly one of the two lists, in original row order.
type IngestSummary struct {
	Successful []IngestSuccess `json:"successful"`
	Failed     []IngestFailure `json:"failed"`
}

func (s *IngestSummary) CreatedCount() int { return len(s.Successful) }
func (s *IngestSummary) FailedCount() int  { return len(s.Failed) }
