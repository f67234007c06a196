package quest

import (
	"fmt"
	"net/http"

	"github.com/questx-lab/nftdrop/pkg/errorx"
)

// FetchError is returned when the quest service cannot be reached or answers
// with a non-success status. StatusCode is zero for transport failures.
type FetchError struct {
	StatusCode int
	Detail     string

	err errorx.Error
}

func newTransportError(detail string) *FetchError {
	return &FetchError{
		Detail: detail,
		err:    errorx.New(errorx.Unavailable, "Quest service is unavailable"),
	}
}

func newStatusError(code int, detail string) *FetchError {
	var err errorx.Error
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		err = errorx.New(errorx.QuestUnauthenticated, "Quest service rejected the api key")
	case http.StatusTooManyRequests:
		err = errorx.New(errorx.QuestTooManyRequests, "Quest service rate limit exceeded")
	default:
		err = errorx.New(errorx.BadResponse, "Quest service returned a bad response")
	}

	return &FetchError{StatusCode: code, Detail: detail, err: err}
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("quest service: %s", e.Detail)
	}

	return fmt.Sprintf("quest service: status %d: %s", e.StatusCode, e.Detail)
}

func (e *FetchError) Unwrap() error {
	return e.err
}
