package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/cashbox"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
)

// CashboxHandler maneja el ciclo de la caja: apertura, movimientos manuales y cierre.
type CashboxHandler struct {
	uc *cashbox.CashboxUseCase
}

// NewCashboxHandler construye el handler de caja.
func NewCashboxHandler(uc *cashbox.CashboxUseCase) *CashboxHandler {
	return &CashboxHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir caja
// @Tags         cashbox
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenSessionRequest  true  "opening_amount"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cashbox/open [post]
func (h *CashboxHandler) Open(c *fiber.Ctx) error {
	shopID := GetShopID(c)
	userID := GetUserID(c)
	if shopID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.OpenSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Open(shopID, userID, in)
	if err != nil {
		return cashboxError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar caja con arqueo
// @Description  Compara el monto contado contra el esperado y clasifica la
//
//	diferencia como EXACTO, SOBRANTE o FALTANTE.
//
// @Tags         cashbox
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.CloseSessionRequest  true  "counted_amount"
// @Success      200   {object}  dto.CloseSessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cashbox/{id}/close [post]
func (h *CashboxHandler) Close(c *fiber.Ctx) error {
	shopID := GetShopID(c)
	userID := GetUserID(c)
	if shopID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CloseSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Close(shopID, userID, c.Params("id"), in)
	if err != nil {
		return cashboxError(c, err)
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Sesión de caja abierta
// @Tags         cashbox
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cashbox/current [get]
func (h *CashboxHandler) Current(c *fiber.Ctx) error {
	shopID := GetShopID(c)
	if shopID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Current(shopID)
	if err != nil {
		return cashboxError(c, err)
	}
	return c.JSON(out)
}

// Income godoc
// @Summary      Ingreso manual de efectivo
// @Tags         cashbox
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashMovementRequest  true  "amount, description"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/cashbox/income [post]
func (h *CashboxHandler) Income(c *fiber.Ctx) error {
	return h.movement(c, h.uc.RegisterIncome, "ingreso registrado")
}

// Expense godoc
// @Summary      Egreso manual de efectivo
// @Tags         cashbox
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashMovementRequest  true  "amount, description"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      412   {object}  dto.ErrorResponse
// @Router       /api/cashbox/expense [post]
func (h *CashboxHandler) Expense(c *fiber.Ctx) error {
	return h.movement(c, h.uc.RegisterExpense, "egreso registrado")
}

func (h *CashboxHandler) movement(c *fiber.Ctx, register func(shopID, userID string, in dto.CashMovementRequest) error, okMsg string) error {
	shopID := GetShopID(c)
	userID := GetUserID(c)
	if shopID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CashMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := register(shopID, userID, in); err != nil {
		return cashboxError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": okMsg})
}

// cashboxError mapea errores de dominio del flujo de caja a códigos HTTP.
func cashboxError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrSessionAlreadyOpen:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_ALREADY_OPEN", Message: "ya hay una sesión de caja abierta"})
	case domain.ErrSessionNotOpen:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_NOT_OPEN", Message: "la sesión no está abierta"})
	case domain.ErrNoOpenSession:
		return c.Status(fiber.StatusPreconditionFailed).JSON(dto.ErrorResponse{Code: "NO_OPEN_SESSION", Message: "no hay sesión de caja abierta"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
