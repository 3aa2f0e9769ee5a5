package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/jabbaspizza/accounts/internal/proto"
)

func TestCheckRequired_AllPresent(t *testing.T) {
	req := &pb.CreateAccountRequest{
		Email:          "a@x.com",
		FirstName:      "A",
		LastName:       "B",
		HashedPassword: "h",
	}

	err := CheckRequired(req, "email", "first_name", "last_name", "hashed_password")
	assert.NoError(t, err)
}

func TestCheckRequired_MissingFieldMessage(t *testing.T) {
	req := &pb.CreateAccountRequest{Email: "a@x.com"}

	err := CheckRequired(req, "email", "first_name")
	require.Error(t, err)
	assert.Equal(t, "First Name is required", err.Error())
}

func TestCheckRequired_ReportsFirstMissingOnly(t *testing.T) {
	// Both email and last_name are missing; only the first in the list
	// is reported.
	req := &pb.CreateAccountRequest{FirstName: "A"}

	err := CheckRequired(req, "email", "first_name", "last_name")
	require.Error(t, err)
	assert.Equal(t, "Email is required", err.Error())

	var fieldErr *RequiredFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "email", fieldErr.Field)
}

func TestCheckRequired_ZeroIDIsMissing(t *testing.T) {
	req := &pb.DeleteAccountRequest{}

	err := CheckRequired(req, "account_id")
	require.Error(t, err)
	assert.Equal(t, "Account Id is required", err.Error())

	req.AccountId = 7
	assert.NoError(t, CheckRequired(req, "account_id"))
}

func TestCheckRequired_UnknownFieldName(t *testing.T) {
	req := &pb.GetAccountRequest{Email: "a@x.com"}

	err := CheckRequired(req, "no_such_field")
	require.Error(t, err)
	assert.Equal(t, "No Such Field is required", err.Error())
}
