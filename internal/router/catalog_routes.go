package router

import (
	"github.com/labstack/echo/v4"

	"github.com/juanfer112/reservaPlaza-back-end/internal/handler"
	"github.com/juanfer112/reservaPlaza-back-end/internal/middleware"
)

// RegisterCatalog registers the space catalog (spacetypes, spaces,
// equipments) under /v1. Anyone authenticated can browse; mutations
// require the ADMIN role.
func RegisterCatalog(e *echo.Echo, st *handler.SpacetypeHandler, sp *handler.SpaceHandler, eq *handler.EquipmentHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "ENTERPRISE"),
	)
	admin := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Spacetypes ----
	g.GET("/spacetypes", st.List)
	g.GET("/spacetypes/:id", st.Get)
	admin.POST("/spacetypes", st.Create)
	admin.PATCH("/spacetypes/:id", st.Update)
	admin.DELETE("/spacetypes/:id", st.Delete)

	// ---- Spaces ----
	g.GET("/spaces", sp.List)
	g.GET("/spaces/:id", sp.Get)
	admin.POST("/spaces", sp.Create)
	admin.PATCH("/spaces/:id", sp.Update)
	admin.DELETE("/spaces/:id", sp.Delete)

	// ---- Equipments ----
	g.GET("/equipments", eq.List)
	g.GET("/equipments/:id", eq.Get)
	admin.POST("/equipments", eq.Create)
	admin.PATCH("/equipments/:id", eq.Update)
	admin.DELETE("/equipments/:id", eq.Delete)
}

// RegisterAccounts registers enterprise account administration and the
// brand endpoints under /v1.
func RegisterAccounts(e *echo.Echo, ent *handler.EnterpriseHandler, br *handler.BrandHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN", "ENTERPRISE"),
	)
	admin := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Enterprises ----
	admin.GET("/enterprises", ent.List)
	g.GET("/enterprises/:id", ent.Get)
	g.PATCH("/enterprises/:id", ent.Update)
	admin.DELETE("/enterprises/:id", ent.Delete)

	// ---- Brands ----
	g.POST("/brands", br.Create)
	g.GET("/brands", br.List)
	g.GET("/brands/:id", br.Get)
	g.PATCH("/brands/:id", br.Update)
	g.DELETE("/brands/:id", br.Delete)
}
