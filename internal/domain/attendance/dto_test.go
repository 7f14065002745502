package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/validator"
)

func TestUpdateAttendanceRequestValidate(t *testing.T) {
	t.Parallel()
	timeIn := "08:05"

	ok := UpdateAttendanceRequest{ID: "3f2504e0-4f89-41d3-9a0c-0305e82c3301", TimeIn: &timeIn}
	assert.NoError(t, ok.Validate())

	notUUID := UpdateAttendanceRequest{ID: "att-1", TimeIn: &timeIn}
	err := notUUID.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "id must be a valid UUID", errs.ToMap()["id"])

	missing := UpdateAttendanceRequest{ID: "", TimeIn: &timeIn}
	require.ErrorAs(t, missing.Validate(), &errs)
	assert.Equal(t, "id is required", errs.ToMap()["id"])

	noPunches := UpdateAttendanceRequest{ID: "3f2504e0-4f89-41d3-9a0c-0305e82c3301"}
	assert.Error(t, noPunches.Validate())
}
