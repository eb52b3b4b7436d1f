package validation

import (
	"errors"
	"testing"

	"ai_tool_directory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidateStruct_BehaviorRequest(t *testing.T) {
	tests := []struct {
		name   string
		req    models.BehaviorRequest
		fields []string
	}{
		{"view with tool", models.BehaviorRequest{Action: "view", ToolID: "notion"}, nil},
		{"workflow with id", models.BehaviorRequest{Action: "workflow_complete", WorkflowID: "wf"}, nil},
		{"unknown action", models.BehaviorRequest{Action: "like", ToolID: "notion"}, []string{"action"}},
		{"bookmark without tool", models.BehaviorRequest{Action: "bookmark"}, []string{"tool_id"}},
		{"workflow without id", models.BehaviorRequest{Action: "workflow_complete"}, []string{"workflow_id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var ve *RequestValidationError
			require.True(t, errors.As(err, &ve))
			got := make([]string, 0, len(ve.Fields))
			for _, f := range ve.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	err := ValidateStruct(&models.RatingRequest{ToolID: "notion", Rating: 9})
	require.Error(t, err)
	assert.Equal(t, "rating must be at most 5", err.Error())

	profile := &models.UserProfile{UserID: "u", JobRole: "ASTRONAUT"}
	err = ValidateStruct(profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_role must be one of:")

	var ve *RequestValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Details(), "fields")
}
