package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload() map[string]any {
	return map[string]any{
		"name":         "Amy",
		"email":        "a@x.com",
		"phone_number": "555-1",
		"address":      "1 Main",
		"state":        true,
	}
}

func TestDeserializeCustomer(t *testing.T) {
	cust, err := DeserializeCustomer(payload())
	require.NoError(t, err)

	assert.Equal(t, int64(0), cust.ID)
	assert.Equal(t, "Amy", cust.Name)
	assert.Equal(t, "a@x.com", cust.Email)
	assert.Equal(t, "555-1", cust.PhoneNumber)
	assert.Equal(t, "1 Main", cust.Address)
	assert.True(t, cust.State)
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	orig := Customer{
		ID:          42,
		Name:        "Rory",
		Email:       "rory@example.com",
		PhoneNumber: "555-0002",
		Address:     "2 Main St",
		State:       false,
	}

	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(raw, &data))

	got, err := DeserializeCustomer(data)
	require.NoError(t, err)

	// the id is never taken from the payload; the store assigns it
	orig.ID = 0
	assert.Equal(t, orig, *got)
}

func TestDeserializeMissingFields(t *testing.T) {
	for _, key := range []string{"name", "email", "phone_number", "address", "state"} {
		data := payload()
		delete(data, key)

		_, err := DeserializeCustomer(data)
		require.Error(t, err, key)
		assert.True(t, errors.Is(err, ErrValidation), key)
		assert.Contains(t, err.Error(), "missing "+key)
	}
}

func TestDeserializeStateMustBeBoolean(t *testing.T) {
	data := payload()
	data["state"] = "true"

	_, err := DeserializeCustomer(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "invalid type for boolean [state]: string")

	data["state"] = float64(1)
	_, err = DeserializeCustomer(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type for boolean [state]: float64")
}

func TestDeserializeStringFieldsMustBeStrings(t *testing.T) {
	data := payload()
	data["name"] = float64(7)

	_, err := DeserializeCustomer(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "invalid type for string [name]: float64")
}

func TestDeserializeNilBody(t *testing.T) {
	_, err := DeserializeCustomer(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "bad or no data")
}
