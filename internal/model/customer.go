package model

import "fmt"

// Customer is the DB entity persisted in the customers table.
// State is true for active customers and false once suspended.
type Customer struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
	Address     string `db:"address" json:"address"`
	State       bool   `db:"state" json:"state"`
}

// requiredStringFields are deserialized in this order; the first problem aborts.
var requiredStringFields = []string{"name", "email", "phone_number", "address"}

// DeserializeCustomer builds a Customer from a decoded JSON object.
// All four string fields and a strictly-boolean state must be present;
// on failure nothing is applied and a validation error names the problem.
func DeserializeCustomer(data map[string]any) (*Customer, error) {
	if data == nil {
		return nil, NewValidation("invalid customer: body of request contained bad or no data")
	}

	fields := make(map[string]string, len(requiredStringFields))
	for _, key := range requiredStringFields {
		raw, ok := data[key]
		if !ok {
			return nil, NewValidation("invalid customer: missing " + key)
		}
		s, ok := raw.(string)
		if !ok {
			return nil, NewValidation(fmt.Sprintf("invalid type for string [%s]: %T", key, raw))
		}
		fields[key] = s
	}

	rawState, ok := data["state"]
	if !ok {
		return nil, NewValidation("invalid customer: missing state")
	}
	state, ok := rawState.(bool)
	if !ok {
		return nil, NewValidation(fmt.Sprintf("invalid type for boolean [state]: %T", rawState))
	}

	return &Customer{
		Name:        fields["name"],
		Email:       fields["email"],
		PhoneNumber: fields["phone_number"],
		Address:     fields["address"],
		State:       state,
	}, nil
}
