package echo

import (
	e "github.com/labstack/echo/v4"

	app "github.com/nucareers/career-portal/internal/application/graduate"
)

func RegisterRoutes(server *e.Echo, auth *Authenticator, importHandler *ImportHandler, graduateHandler *GraduateHandler) {
	graduates := server.Group("/api/v1/graduates", auth.Middleware())

	graduates.POST("/import", importHandler.ImportGraduates, RequireRole(app.RoleAdmin))
	graduates.GET("/imports", importHandler.ListImportRuns, RequireRole(app.RoleAdmin))

	graduates.GET("", graduateHandler.ListGraduates)
	graduates.GET("/:id", graduateHandler.GetGraduate)
	graduates.PATCH("/:id", graduateHandler.UpdateGraduate)
	graduates.DELETE("/:id", graduateHandler.DeleteGraduate, RequireRole(app.RoleAdmin))
}
