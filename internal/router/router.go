package router

import (
	"time"

	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/config"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/handler"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/infra"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/middleware"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/model"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/repository"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/service"
	"github.com/Miguelito3106/Maquinaria-Pesada-sub001/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	denylist := infra.NewRedisDenylist(rdb)
	dispatcher := worker.NewDispatcher(rdb)
	pdfGen := infra.NewPDFGenerator()

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	cargoRepo := repository.NewCargoRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	representanteRepo := repository.NewRepresentanteRepository(db)
	categoriaRepo := repository.NewCategoriaMaquinariaRepository(db)
	maquinaRepo := repository.NewMaquinaRepository(db)
	solicitudRepo := repository.NewSolicitudRepository(db)
	mantenimientoRepo := repository.NewMantenimientoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, denylist, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	cargoSvc := service.NewCargoService(cargoRepo)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo, cargoRepo)
	empresaSvc := service.NewEmpresaService(empresaRepo)
	representanteSvc := service.NewRepresentanteService(representanteRepo, empresaRepo)
	categoriaSvc := service.NewCategoriaMaquinariaService(categoriaRepo)
	maquinaSvc := service.NewMaquinaService(maquinaRepo, categoriaRepo)
	solicitudSvc := service.NewSolicitudService(solicitudRepo, empresaRepo, maquinaRepo, usuarioRepo, empleadoRepo, dispatcher)
	mantenimientoSvc := service.NewMantenimientoService(mantenimientoRepo, maquinaRepo, solicitudRepo)
	pagoSvc := service.NewPagoService(pagoRepo, mantenimientoRepo, empresaRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	cargosH := handler.NewCargosHandler(cargoSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	empresasH := handler.NewEmpresasHandler(empresaSvc)
	representantesH := handler.NewRepresentantesHandler(representanteSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	maquinasH := handler.NewMaquinasHandler(maquinaSvc)
	solicitudesH := handler.NewSolicitudesHandler(solicitudSvc, pdfGen)
	mantenimientosH := handler.NewMantenimientosHandler(mantenimientoSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/registrar", authH.Registrar)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, denylist)
	soloAdmin := middleware.RequireRole(model.RolAdmin)
	cualquierRol := middleware.RequireRole(model.RolAdmin, model.RolEmpleado)

	v1 := r.Group("/v1", jwtMW)
	{
		// Session self-service
		v1.POST("/auth/logout", cualquierRol, authH.Logout)
		v1.GET("/auth/perfil", cualquierRol, authH.Perfil)
		v1.PUT("/auth/perfil", cualquierRol, authH.ActualizarPerfil)
		v1.PUT("/auth/password", cualquierRol, authH.CambiarPassword)

		// Usuarios — list/create/delete are admin; get/update go through the
		// service ownership check so an empleado can manage its own record
		v1.GET("/usuarios/estadisticas", soloAdmin, usuariosH.Estadisticas)
		v1.GET("/usuarios", soloAdmin, usuariosH.Listar)
		v1.POST("/usuarios", soloAdmin, usuariosH.Crear)
		v1.GET("/usuarios/:id", cualquierRol, usuariosH.Obtener)
		v1.PUT("/usuarios/:id", cualquierRol, usuariosH.Actualizar)
		v1.DELETE("/usuarios/:id", cualquierRol, usuariosH.Eliminar)

		// Cargos
		v1.GET("/cargos", cualquierRol, cargosH.Listar)
		v1.GET("/cargos/:id", cualquierRol, cargosH.Obtener)
		cargos := v1.Group("/cargos", soloAdmin)
		{
			cargos.POST("", cargosH.Crear)
			cargos.PUT("/:id", cargosH.Actualizar)
			cargos.DELETE("/:id", cargosH.Eliminar)
		}

		// Empleados
		v1.GET("/empleados/buscar", cualquierRol, empleadosH.Buscar)
		v1.GET("/empleados", cualquierRol, empleadosH.Listar)
		v1.GET("/empleados/:id", cualquierRol, empleadosH.Obtener)
		empleados := v1.Group("/empleados", soloAdmin)
		{
			empleados.POST("", empleadosH.Crear)
			empleados.PUT("/:id", empleadosH.Actualizar)
			empleados.DELETE("/:id", empleadosH.Eliminar)
		}

		// Empresas
		v1.GET("/empresas/mas-solicitudes", soloAdmin, empresasH.ConMasSolicitudes)
		v1.GET("/empresas/sin-solicitudes", soloAdmin, empresasH.SinSolicitudes)
		v1.GET("/empresas", cualquierRol, empresasH.Listar)
		v1.GET("/empresas/:id", cualquierRol, empresasH.Obtener)
		empresas := v1.Group("/empresas", soloAdmin)
		{
			empresas.POST("", empresasH.Crear)
			empresas.PUT("/:id", empresasH.Actualizar)
			empresas.DELETE("/:id", empresasH.Eliminar)
		}

		// Representantes
		v1.GET("/representantes", cualquierRol, representantesH.Listar)
		v1.GET("/representantes/:id", cualquierRol, representantesH.Obtener)
		representantes := v1.Group("/representantes", soloAdmin)
		{
			representantes.POST("", representantesH.Crear)
			representantes.PUT("/:id", representantesH.Actualizar)
			representantes.DELETE("/:id", representantesH.Eliminar)
		}

		// Categorias de maquinaria
		v1.GET("/categorias", cualquierRol, categoriasH.Listar)
		v1.GET("/categorias/:id", cualquierRol, categoriasH.Obtener)
		categorias := v1.Group("/categorias", soloAdmin)
		{
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
		}

		// Maquinas
		v1.GET("/maquinas/pesadas-costosas", cualquierRol, maquinasH.PesadasCostosas)
		v1.GET("/maquinas", cualquierRol, maquinasH.Listar)
		v1.GET("/maquinas/:id", cualquierRol, maquinasH.Obtener)
		maquinas := v1.Group("/maquinas", soloAdmin)
		{
			maquinas.POST("", maquinasH.Crear)
			maquinas.PUT("/:id", maquinasH.Actualizar)
			maquinas.DELETE("/:id", maquinasH.Eliminar)
		}

		// Solicitudes — owner-scoped in the service layer
		v1.GET("/solicitudes/total-por-empresa", soloAdmin, solicitudesH.TotalPorEmpresa)
		v1.GET("/solicitudes/por-empleado/:documento", soloAdmin, solicitudesH.PorEmpleado)
		v1.GET("/solicitudes/mensual", soloAdmin, solicitudesH.ReporteMensual)
		solicitudes := v1.Group("/solicitudes", cualquierRol)
		{
			solicitudes.POST("", solicitudesH.Crear)
			solicitudes.GET("", solicitudesH.Listar)
			solicitudes.GET("/:id", solicitudesH.Obtener)
			solicitudes.PUT("/:id", solicitudesH.Actualizar)
			solicitudes.DELETE("/:id", solicitudesH.Eliminar)
			solicitudes.GET("/:id/pdf", solicitudesH.PDF)
		}
		v1.PATCH("/solicitudes/:id/estado", soloAdmin, solicitudesH.CambiarEstado)

		// Mantenimientos
		v1.GET("/mantenimientos/estadisticas", cualquierRol, mantenimientosH.Estadisticas)
		v1.GET("/mantenimientos/buscar", cualquierRol, mantenimientosH.Buscar)
		v1.GET("/mantenimientos/rango-fechas", cualquierRol, mantenimientosH.PorRangoFechas)
		v1.GET("/mantenimientos/por-costo", cualquierRol, mantenimientosH.PorCosto)
		v1.GET("/mantenimientos", cualquierRol, mantenimientosH.Listar)
		v1.GET("/mantenimientos/:id", cualquierRol, mantenimientosH.Obtener)
		mantenimientos := v1.Group("/mantenimientos", soloAdmin)
		{
			mantenimientos.POST("", mantenimientosH.Crear)
			mantenimientos.PUT("/:id", mantenimientosH.Actualizar)
			mantenimientos.DELETE("/:id", mantenimientosH.Eliminar)
		}

		// Pagos
		pagos := v1.Group("/pagos", soloAdmin)
		{
			pagos.POST("", pagosH.Crear)
			pagos.GET("", pagosH.Listar)
			pagos.GET("/:id", pagosH.Obtener)
			pagos.PUT("/:id", pagosH.Actualizar)
			pagos.DELETE("/:id", pagosH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
