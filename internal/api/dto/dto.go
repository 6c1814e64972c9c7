// Package dto содержит структуры DTO для HTTP API.
package dto

// ReqStatus - итог обработки запроса в конверте ответа.
type ReqStatus string

const (
	// StatusOk - запрос обработан успешно.
	StatusOk ReqStatus = "Ok"
	// StatusFail - запрос завершился ошибкой.
	StatusFail ReqStatus = "Fail"
)

// MsgResponse - конверт ответа. Msg содержит дружелюбную подсказку,
// Detail - текст исходной ошибки либо подтверждение.
type MsgResponse struct {
	Status ReqStatus `json:"status"`
	Msg    string    `json:"msg"`
	Detail string    `json:"detail"`
}

// WorkUnit - строка workList в ответе GET /pkg.
type WorkUnit struct {
	Package string `json:"packageName"`
	Status  string `json:"status"`
	Alias   string `json:"alias"`
	TgUID   int64  `json:"tgUid"`
}

// MarkUnit - строка markList в ответе GET /pkg.
type MarkUnit struct {
	Package string `json:"packageName"`
	Mark    string `json:"mark"`
}

// PkgResponse - GET /pkg response.
type PkgResponse struct {
	WorkList []WorkUnit `json:"workList"`
	MarkList []MarkUnit `json:"markList"`
}
