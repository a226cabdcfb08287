package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/application/dto"
)

// RoleAdmin puede consultar cualquier sucursal.
const RoleAdmin = "admin"

// RequireBranch fija la sucursal sobre la que se calculan los reportes. Debe usarse DESPUÉS
// de AuthMiddleware (necesita LocalBranchID).
//
// Comportamiento:
//   - Usuarios con sucursal en el token: se usa esa; ?branch_id distinto → 403.
//   - Admin sin sucursal en el token: puede elegirla con ?branch_id (vacío = todas).
//   - Otro rol sin sucursal → 403.
func RequireBranch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenBranch := GetBranchID(c)
		requested := c.Query("branch_id")

		switch {
		case tokenBranch != "":
			if requested != "" && requested != tokenBranch {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Code:    "BRANCH_FORBIDDEN",
					Message: "no tiene acceso a la sucursal solicitada",
				})
			}
		case GetRole(c) == RoleAdmin:
			c.Locals(LocalBranchID, requested)
		default:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "BRANCH_REQUIRED",
				Message: "el token no está asociado a ninguna sucursal",
			})
		}
		return c.Next()
	}
}
