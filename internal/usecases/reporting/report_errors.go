package reporting

import (
	"errors"
)

var (
	ErrDataSource     = errors.New("erro ao ler a camada gold")
	ErrReportNotFound = errors.New("entidade não encontrada no relatório")
	ErrInvalidFilter  = errors.New("filtro inválido")
)

// IsClientError indica erros causados pelos parâmetros da requisição
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidFilter) || errors.Is(err, ErrReportNotFound)
}
