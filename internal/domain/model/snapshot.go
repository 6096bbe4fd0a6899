package model

// OfferSelectionSummary holds derived flags recomputed over a snapshot of
// offers. These are views, never persisted state.
type OfferSelectionSummary struct {
	Total     int  `json:"total"`
	HasOpen   bool `json:"has_open"`
	HasPaused bool `json:"has_paused"`
	HasClosed bool `json:"has_closed"`
}

// SummarizeOffers computes selection flags over a snapshot list of offers.
func SummarizeOffers(offers []*JobOffer) OfferSelectionSummary {
	summary := OfferSelectionSummary{Total: len(offers)}
	for _, offer := range offers {
		switch offer.Status {
		case JobStatusOpen:
			summary.HasOpen = true
		case JobStatusPaused:
			summary.HasPaused = true
		case JobStatusClosed:
			summary.HasClosed = true
		}
	}
	return summary
}

// FilterByStatus returns the offers in the snapshot whose status matches.
func FilterByStatus(offers []*JobOffer, status JobStatus) []*JobOffer {
	matched := make([]*JobOffer, 0, len(offers))
	for _, offer := range offers {
		if offer.Status == status {
			matched = append(matched, offer)
		}
	}
	return matched
}
