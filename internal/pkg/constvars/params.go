package constvars

const (
	URLParamSessionID = "session_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 50
)
