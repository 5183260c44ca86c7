package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberhollow/realmd/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "world item not found",
			expected: "NOT_FOUND: world item not found",
		},
		{
			name:     "resource exhausted error",
			code:     errors.CodeResourceExhausted,
			message:  "inventory is full",
			expected: "RESOURCE_EXHAUSTED: inventory is full",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "slot index 42 out of range",
			expected: "OUT_OF_RANGE: slot index 42 out of range",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("character not found").
		WithMeta("character_id", "char_123").
		WithMeta("user_id", "user_456")

	s.Assert().Equal("char_123", err.Meta["character_id"])
	s.Assert().Equal("user_456", err.Meta["user_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.ResourceExhausted("inventory is full")
	wrapped := errors.Wrap(inner, "pickup failed")

	s.Assert().Equal(errors.CodeResourceExhausted, errors.GetCode(wrapped))
	s.Assert().True(errors.IsResourceExhausted(wrapped))
	s.Assert().ErrorIs(wrapped, inner)
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	inner := fmt.Errorf("connection reset")
	wrapped := errors.Wrap(inner, "failed to save inventory")

	s.Assert().Equal(errors.CodeInternal, errors.GetCode(wrapped))
	s.Assert().Contains(wrapped.Error(), "connection reset")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	inner := fmt.Errorf("redis: connection pool exhausted")
	wrapped := errors.WrapWithCode(inner, errors.CodeUnavailable, "persistence gateway unavailable")

	s.Assert().True(errors.IsUnavailable(wrapped))
	s.Assert().ErrorIs(wrapped, inner)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeUnauthenticated, errors.GetCode(errors.Unauthenticated("bad token")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionID", "", vb)
	errors.ValidateRange("slotIndex", 99, 0, 39, vb)
	err := vb.Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "sessionID")
	s.Assert().Contains(err.Error(), "slotIndex")
}

func (s *ErrorsTestSuite) TestValidationBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionID", "sess_1", vb)
	s.Assert().NoError(vb.Build())
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	s.Assert().Equal(401, errors.CodeUnauthenticated.HTTPStatus())
	s.Assert().Equal(403, errors.CodePermissionDenied.HTTPStatus())
	s.Assert().Equal(400, errors.CodeInvalidArgument.HTTPStatus())
}
