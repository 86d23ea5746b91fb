package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Request_ShouldSurviveKafkaEncoding(t *testing.T) {
	data, err := MarshalRequest(ReportRequest{UserID: 1234567890, Currency: "INR"})
	require.NoError(t, err)

	got, err := UnmarshalRequest(data)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), got.UserID)
	assert.Equal(t, "INR", got.Currency)
}

func Test_UnmarshalRequest_ShouldFailWithoutUser(t *testing.T) {
	_, err := UnmarshalRequest(nil)
	assert.Error(t, err)

	_, err = UnmarshalRequest([]byte{0xff})
	assert.Error(t, err)
}

func Test_Report_ShouldKeepCategoryOrder(t *testing.T) {
	in := &Report{
		UserID:            7,
		Currency:          "EUR",
		TotalItems:        2,
		PurchasedItems:    1,
		TotalCost:         "€17.00",
		PurchasedCost:     "€8.50",
		RemainingCost:     "€8.50",
		CompletionPercent: 50,
		Categories: []CategoryLine{
			{Category: "produce", Remaining: "€8.50"},
			{Category: "dairy", Remaining: "€0.00"},
		},
		Success: true,
	}

	s, err := in.ToStruct()
	require.NoError(t, err)

	out := ReportFromStruct(s)
	assert.Equal(t, in, out)
}

func Test_StatusFromStruct(t *testing.T) {
	status := StatusFromStruct(OperationStatus{Error: "boom"}.ToStruct())
	assert.False(t, status.Success)
	assert.Equal(t, "boom", status.Error)

	assert.Equal(t, OperationStatus{}, StatusFromStruct(nil))
}
