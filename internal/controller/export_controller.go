package controller

import (
	"bytes"

	"entity-notes-be/internal/dto"
	"entity-notes-be/internal/pkg/serverutils"
	"entity-notes-be/internal/service"
	"entity-notes-be/pkg/export"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	ExportSingle(ctx *fiber.Ctx) error
	ExportBulk(ctx *fiber.Ctx) error
}

type exportController struct {
	exportService service.IExportService
}

func NewExportController(exportService service.IExportService) IExportController {
	return &exportController{
		exportService: exportService,
	}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":entityType/:entityId/notes", c.ExportSingle)
	h.Post(":entityType/bulk", c.ExportBulk)
}

func (c *exportController) ExportSingle(ctx *fiber.Ctx) error {
	actor, _ := serverutils.ActorFromLocals(ctx)

	doc, err := c.exportService.ExportEntityNotes(ctx.Context(),
		actor, ctx.Params("entityType"), ctx.Params("entityId"))
	if err != nil {
		return err
	}

	return sendXLSX(ctx, doc)
}

func (c *exportController) ExportBulk(ctx *fiber.Ctx) error {
	actor, _ := serverutils.ActorFromLocals(ctx)

	var req dto.BulkExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	doc, err := c.exportService.ExportBulk(ctx.Context(), actor, ctx.Params("entityType"), &req)
	if err != nil {
		return err
	}

	return sendXLSX(ctx, doc)
}

func sendXLSX(ctx *fiber.Ctx, doc *export.Document) error {
	var buf bytes.Buffer
	if err := export.WriteXLSX(doc, &buf); err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`.xlsx"`)
	return ctx.Send(buf.Bytes())
}
