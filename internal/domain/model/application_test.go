package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationStatus_Valid(t *testing.T) {
	assert.True(t, ApplicationPending.Valid())
	assert.True(t, ApplicationAccepted.Valid())
	assert.True(t, ApplicationRejected.Valid())
	assert.True(t, ApplicationWithdrawn.Valid())
	assert.False(t, ApplicationStatus("shortlisted").Valid())
}

func TestApplicationStatus_Terminal(t *testing.T) {
	assert.False(t, ApplicationPending.Terminal())
	assert.True(t, ApplicationAccepted.Terminal())
	assert.True(t, ApplicationRejected.Terminal())
	assert.True(t, ApplicationWithdrawn.Terminal())
}

func TestParseApplicationStatus_Normalizes(t *testing.T) {
	status, ok := ParseApplicationStatus(" Accepted ")
	require.True(t, ok)
	assert.Equal(t, ApplicationAccepted, status)

	_, ok = ParseApplicationStatus("declined")
	assert.False(t, ok)
}

func TestDecisionStatus(t *testing.T) {
	assert.True(t, DecisionStatus(ApplicationAccepted))
	assert.True(t, DecisionStatus(ApplicationRejected))
	assert.False(t, DecisionStatus(ApplicationPending))
	assert.False(t, DecisionStatus(ApplicationWithdrawn))
}

func TestApplyRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		req      ApplyRequest
		errorMsg string
	}{
		{
			name: "valid request",
			req:  ApplyRequest{JobOfferID: "offer-1", CandidateID: "candidate-1"},
		},
		{
			name:     "missing offer id",
			req:      ApplyRequest{CandidateID: "candidate-1"},
			errorMsg: "job_offer_id is required",
		},
		{
			name:     "missing candidate id",
			req:      ApplyRequest{JobOfferID: "offer-1", CandidateID: " "},
			errorMsg: "candidate_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
		})
	}
}
