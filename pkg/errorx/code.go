package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest     Code = 100001
	BadResponse    Code = 100002
	NotFound       Code = 100004
	Internal       Code = 100007
	Unavailable    Code = 100008
	NotImplemented Code = 100009

	// Quest service codes
	QuestUnauthenticated Code = 200001
	QuestTooManyRequests Code = 200002

	// Transfer codes
	TransferRejected Code = 300001
)
