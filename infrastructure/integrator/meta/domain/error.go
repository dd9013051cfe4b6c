package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta. A API pode
// devolver 200 com um objeto de erro no corpo, então o corpo deve ser
// verificado antes do status HTTP.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é um erro da Graph API já classificado.
type APIError struct {
	Message      string
	Type         string
	Code         int
	ErrorSubcode int
	StatusCode   int
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("meta api error type=%s code=%d subcode=%d: %s", e.Type, e.Code, e.ErrorSubcode, e.Message)
}

// IsInvalidCredential verifica se o erro é de token inválido ou expirado.
// O código 190 representa token expirado; subcódigos 460, 463 e 467 cobrem
// outros problemas de token em OAuthException.
func (e *APIError) IsInvalidCredential() bool {
	if e == nil {
		return false
	}
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// IsPermissionDenied verifica se o erro é de permissão insuficiente ou de
// app ainda não aprovado na revisão da plataforma. Códigos 200-299 são a
// família de erros de permissão; o código 10 é "permission denied".
func (e *APIError) IsPermissionDenied() bool {
	if e == nil {
		return false
	}
	return e.Code == 10 || (e.Code >= 200 && e.Code <= 299)
}
