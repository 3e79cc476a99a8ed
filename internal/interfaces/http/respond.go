package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/almoxeletrico/estoque-api/internal/application/dto"
	"github.com/almoxeletrico/estoque-api/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// responderErro mapeia erros de domínio para status HTTP.
func responderErro(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(), Campo: vErr.Campo,
		})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// responderXLSX envia um arquivo excelize como download.
func responderXLSX(c *fiber.Ctx, f *excelize.File, nomeArquivo string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+nomeArquivo)
	return c.Send(buf.Bytes())
}

// abrirUpload abre o arquivo enviado no campo "arquivo" do multipart.
func abrirUpload(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return "", nil, domain.NewValidationError("arquivo", "arquivo não enviado")
	}
	file, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	conteudo, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, conteudo, nil
}
