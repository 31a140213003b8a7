// Package response задаёт единый формат ответов API.
// Успех — Response{status:"success"}, ошибка — ErrorResponse с машинной
// категорией в Error и человекочитаемыми подробностями в Details.
package response

// Response — конверт успешного ответа.
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse — конверт ошибки. Клиенты ветвятся по полю Error,
// Details предназначен только для отображения.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// ErrorResponseWithDetails собирает ошибку с уточнением для случаев,
// не покрытых предопределёнными ответами из errors.go.
func ErrorResponseWithDetails(err, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   err,
		Details: details,
	}
}
