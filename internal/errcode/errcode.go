package errcode

// 响应信封中的 code 约定：成功为 200，失败时与 HTTP 状态码一致。
const (
	OK              = 200
	BadRequest      = 400
	NotFound        = 404
	TooManyRequests = 429
	SystemError     = 500
)
