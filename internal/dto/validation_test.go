package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return verr
}

func TestParseCreateMeal(t *testing.T) {
	req, err := ParseCreateMeal([]byte(`{"name":"salad","description":"green","isOnDiet":false,"extra":1}`))
	require.NoError(t, err)
	assert.Equal(t, CreateMealRequest{Name: "salad", Description: "green", IsOnDiet: false}, req)
}

func TestParseCreateMealAllowsEmptyStrings(t *testing.T) {
	req, err := ParseCreateMeal([]byte(`{"name":"","description":"","isOnDiet":true}`))
	require.NoError(t, err)
	assert.True(t, req.IsOnDiet)
}

func TestParseCreateMealErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{name: "empty body", body: ``, fields: []string{"name", "description", "isOnDiet"}},
		{name: "missing flag", body: `{"name":"a","description":"b"}`, fields: []string{"isOnDiet"}},
		{name: "wrong flag type", body: `{"name":"a","description":"b","isOnDiet":"yes"}`, fields: []string{"isOnDiet"}},
		{name: "wrong name type", body: `{"name":1,"description":"b","isOnDiet":true}`, fields: []string{"name"}},
		{name: "array body", body: `[]`, fields: []string{"body"}},
		{name: "malformed", body: `{"name":`, fields: []string{"body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCreateMeal([]byte(tt.body))
			verr := requireValidationError(t, err)

			got := make([]string, len(verr.Fields))
			for i, f := range verr.Fields {
				got[i] = f.Field
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestParseCreateMealNameTooLong(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	_, err := ParseCreateMeal([]byte(`{"name":"` + string(long) + `","description":"b","isOnDiet":true}`))
	verr := requireValidationError(t, err)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "must be at most 255 characters", verr.Fields[0].Message)
}

func TestParseUpdateMeal(t *testing.T) {
	req, err := ParseUpdateMeal([]byte(`{"isOnDiet":false}`))
	require.NoError(t, err)
	assert.Nil(t, req.Name)
	assert.Nil(t, req.Description)
	require.NotNil(t, req.IsOnDiet)
	assert.False(t, *req.IsOnDiet)

	req, err = ParseUpdateMeal(nil)
	require.NoError(t, err)
	assert.Equal(t, UpdateMealRequest{}, req)

	_, err = ParseUpdateMeal([]byte(`{"isOnDiet":1}`))
	requireValidationError(t, err)
}

func TestParseCreateUser(t *testing.T) {
	req, err := ParseCreateUser([]byte(`{"name":"John Doe","email":"johndoe@gmail.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "John Doe", req.Name)
	assert.Equal(t, "johndoe@gmail.com", req.Email)

	_, err = ParseCreateUser([]byte(`{"name":"John Doe"}`))
	verr := requireValidationError(t, err)
	assert.Equal(t, []FieldError{{Field: "email", Message: "is required"}}, verr.Fields)
	assert.Equal(t, "validation failed: email is required", verr.Error())
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, err := ParseID("mealId", id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("mealId", "not-a-uuid")
	verr := requireValidationError(t, err)
	assert.Equal(t, []FieldError{{Field: "mealId", Message: "must be a valid UUID"}}, verr.Fields)

	_, err = ParseID("id", "")
	verr = requireValidationError(t, err)
	assert.Equal(t, "is required", verr.Fields[0].Message)
}
