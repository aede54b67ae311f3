package bulk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_AccountsForEveryRow(t *testing.T) {
	result := NewResult()

	result.Accept("650112345678")
	result.Reject("650112345678", ReasonDuplicate)
	result.Reject("", ReasonInvalidData)
	result.Accept("650187654321")
	result.Reject("650100000000", ReasonError)

	assert.Equal(t, 5, result.Len())
	assert.Equal(t, []string{"650112345678", "650187654321"}, result.Accepted)
	assert.Equal(t, []Rejected{
		{Key: "650112345678", Reason: ReasonDuplicate},
		{Key: "", Reason: ReasonInvalidData},
		{Key: "650100000000", Reason: ReasonError},
	}, result.Rejected)
}

func TestNewResult_EncodesEmptyArrays(t *testing.T) {
	result := NewResult()

	accepted, err := json.Marshal(result.Accepted)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(accepted))

	rejected, err := json.Marshal(result.Rejected)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(rejected))
}
