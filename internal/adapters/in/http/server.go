// Package http exposes the REST surface: route registration, role
// gating, request/response DTOs, and the mapping from use case errors
// to HTTP status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/parcel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerUserHandler     commands.RegisterUserCommandHandler
	authenticateUserHandler commands.AuthenticateUserCommandHandler
	updateUserHandler       commands.UpdateUserCommandHandler
	deleteUserHandler       commands.DeleteUserCommandHandler

	selectPackagesHandler commands.SelectPackagesCommandHandler
	editPackageHandler    commands.EditPackageCommandHandler
	createPackageHandler  commands.CreatePackageCommandHandler
	updatePackageHandler  commands.UpdatePackageCommandHandler
	deletePackageHandler  commands.DeletePackageCommandHandler

	getAllPackagesHandler      queries.GetAllPackagesQueryHandler
	getDeliveryPackagesHandler queries.GetDeliveryPackagesQueryHandler
	getDeliveryUsersHandler    queries.GetDeliveryUsersQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	authenticateUserHandler commands.AuthenticateUserCommandHandler,
	updateUserHandler commands.UpdateUserCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	selectPackagesHandler commands.SelectPackagesCommandHandler,
	editPackageHandler commands.EditPackageCommandHandler,
	createPackageHandler commands.CreatePackageCommandHandler,
	updatePackageHandler commands.UpdatePackageCommandHandler,
	deletePackageHandler commands.DeletePackageCommandHandler,
	getAllPackagesHandler queries.GetAllPackagesQueryHandler,
	getDeliveryPackagesHandler queries.GetDeliveryPackagesQueryHandler,
	getDeliveryUsersHandler queries.GetDeliveryUsersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerUserHandler:        registerUserHandler,
		authenticateUserHandler:    authenticateUserHandler,
		updateUserHandler:          updateUserHandler,
		deleteUserHandler:          deleteUserHandler,
		selectPackagesHandler:      selectPackagesHandler,
		editPackageHandler:         editPackageHandler,
		createPackageHandler:       createPackageHandler,
		updatePackageHandler:       updatePackageHandler,
		deletePackageHandler:       deletePackageHandler,
		getAllPackagesHandler:      getAllPackagesHandler,
		getDeliveryPackagesHandler: getDeliveryPackagesHandler,
		getDeliveryUsersHandler:    getDeliveryUsersHandler,
		logger:                     logger.With("component", "http"),
	}
}

// RegisterRoutes mounts every route on the echo instance. Auth and
// role gates wrap the protected groups; the handlers themselves never
// re-check roles.
func (s *Server) RegisterRoutes(e *echo.Echo, verifier TokenVerifier) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := Auth(verifier)
	adminOnly := RequireRole(user.RoleAdmin)
	deliveryOnly := RequireRole(user.RoleDelivery)

	users := e.Group("/api/user")
	users.POST("/register", s.RegisterUser)
	users.POST("/login", s.Login)
	users.PUT("/edit/:id", s.EditUser, auth, adminOnly)
	users.DELETE("/delete/:id", s.DeleteUser, auth, adminOnly)
	users.GET("/deliveries", s.GetDeliveries, auth, adminOnly)
	users.GET("/deliveries/active", s.GetActiveDeliveries, auth, adminOnly)

	packages := e.Group("/api/package")
	packages.PUT("/:id/select/packages", s.SelectPackages, auth, deliveryOnly)
	packages.PUT("/:idUser/edit/package/:idPackage", s.EditOwnedPackage, auth, deliveryOnly)
	packages.GET("/:idUser/packages", s.GetDeliveryPackages, auth, deliveryOnly)
	packages.POST("/new", s.CreatePackage, auth, adminOnly)
	packages.GET("/", s.GetAllPackages, auth, adminOnly)
	packages.PUT("/edit/package/:id", s.EditPackage, auth, adminOnly)
	packages.DELETE("/delete/package/:id", s.DeletePackage, auth, adminOnly)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
}

// RegisterUser godoc
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Param body body RegisterUserRequest true "Account data"
// @Success 201 {object} DataResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/user/register [post]
func (s *Server) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Password, role, req.Active)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	created, err := s.registerUserHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, ports.ErrEmailAlreadyTaken) {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, DataResponse{
		Data:    userToResponse(created),
		Message: "User registered",
	})
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 201 {object} DataResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/user/login [post]
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	resp, err := s.authenticateUserHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, commands.ErrInvalidCredentials) {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, DataResponse{
		Data: LoginResponse{
			Token: resp.Token,
			User:  userToResponse(resp.User),
		},
		Message: "Session started",
	})
}

// EditUser godoc
// @Summary Edit an account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param body body EditUserRequest true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/user/edit/{id} [put]
func (s *Server) EditUser(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid user id"})
	}

	var req EditUserRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	var role *user.Role
	if req.Role != nil {
		parsed, roleErr := user.RoleFromString(*req.Role)
		if roleErr != nil {
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: roleErr.Error()})
		}
		role = &parsed
	}

	cmd, err := commands.NewUpdateUserCommand(userID, req.Email, req.Password, role, req.Active)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	updated, err := s.updateUserHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}
	if errors.Is(err, ports.ErrEmailAlreadyTaken) {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data:    userToResponse(updated),
		Message: "User edited successfully",
	})
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/user/delete/{id} [delete]
func (s *Server) DeleteUser(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid user id"})
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	err = s.deleteUserHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}

// GetDeliveries godoc
// @Summary List courier accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/user/deliveries [get]
func (s *Server) GetDeliveries(c echo.Context) error {
	return s.listDeliveries(c, false, "All Users", "Users not found")
}

// GetActiveDeliveries godoc
// @Summary List active courier accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/user/deliveries/active [get]
func (s *Server) GetActiveDeliveries(c echo.Context) error {
	return s.listDeliveries(c, true, "All active users", "No active users found")
}

func (s *Server) listDeliveries(c echo.Context, activeOnly bool, okMessage, emptyMessage string) error {
	query := queries.NewGetDeliveryUsersQuery(activeOnly)

	rows, err := s.getDeliveryUsersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c, err)
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: emptyMessage})
	}

	response := make([]UserResponse, len(rows))
	for i, row := range rows {
		response[i] = userReadModelToResponse(row)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data:    response,
		Message: okMessage,
	})
}

// SelectPackages godoc
// @Summary Claim a batch of packages for a courier
// @Description All-or-nothing: if any listed package does not exist, nothing is assigned.
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Courier user id"
// @Param body body SelectPackagesRequest true "Package ids"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/package/{id}/select/packages [put]
func (s *Server) SelectPackages(c echo.Context) error {
	userID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid user id"})
	}

	var req SelectPackagesRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewSelectPackagesCommand(userID, req.Packages)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	err = s.selectPackagesHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "User not found"})
	}
	if errors.Is(err, commands.ErrSomePackagesDoNotExist) {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Some packages do not exist"})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "All packages selected"})
}

// EditOwnedPackage godoc
// @Summary Edit a package owned by the courier
// @Description Only touches the package when it is assigned to the given courier.
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param idUser path int true "Courier user id"
// @Param idPackage path int true "Package id"
// @Param body body EditPackageRequest true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/package/{idUser}/edit/package/{idPackage} [put]
func (s *Server) EditOwnedPackage(c echo.Context) error {
	userID, err := parseID(c.Param("idUser"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid user id"})
	}

	packageID, err := parseID(c.Param("idPackage"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid package id"})
	}

	patch, err := s.bindPackagePatch(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	cmd, err := commands.NewEditPackageCommand(packageID, userID, patch)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	updated, err := s.editPackageHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Package not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data:    packageToResponse(updated),
		Message: "Package edited successfully",
	})
}

// GetDeliveryPackages godoc
// @Summary List packages assigned to a courier
// @Tags packages
// @Security BearerAuth
// @Produce json
// @Param idUser path int true "Courier user id"
// @Success 200 {object} DataResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/package/{idUser}/packages [get]
func (s *Server) GetDeliveryPackages(c echo.Context) error {
	userID, err := parseID(c.Param("idUser"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid user id"})
	}

	query, err := queries.NewGetDeliveryPackagesQuery(userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	rows, err := s.getDeliveryPackagesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c, err)
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "No packages found"})
	}

	response := make([]PackageResponse, len(rows))
	for i, row := range rows {
		response[i] = deliveryPackageReadModelToResponse(row)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data:    response,
		Message: "Delivery packages",
	})
}

// CreatePackage godoc
// @Summary Register a new package
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreatePackageRequest true "Package data"
// @Success 201 {object} DataResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/package/new [post]
func (s *Server) CreatePackage(c echo.Context) error {
	var req CreatePackageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid request body"})
	}

	status := parcel.Pending
	if req.Status != "" {
		parsed, err := parcel.StatusFromString(req.Status)
		if err != nil {
			return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		}
		status = parsed
	}

	cmd, err := commands.NewCreatePackageCommand(req.ClientName, req.Quantity, req.Weight, req.Address, status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	created, err := s.createPackageHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, DataResponse{
		Data:    packageToResponse(created),
		Message: "Package created",
	})
}

// GetAllPackages godoc
// @Summary List every package
// @Tags packages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/package/ [get]
func (s *Server) GetAllPackages(c echo.Context) error {
	query := queries.NewGetAllPackagesQuery()

	rows, err := s.getAllPackagesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c, err)
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Packages not found"})
	}

	response := make([]PackageResponse, len(rows))
	for i, row := range rows {
		response[i] = packageReadModelToResponse(row)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data:    response,
		Message: "All packages",
	})
}

// EditPackage godoc
// @Summary Edit any package
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Package id"
// @Param body body EditPackageRequest true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/package/edit/package/{id} [put]
func (s *Server) EditPackage(c echo.Context) error {
	packageID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid package id"})
	}

	patch, err := s.bindPackagePatch(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	cmd, err := commands.NewUpdatePackageCommand(packageID, patch)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	updated, err := s.updatePackageHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Package not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, DataResponse{
		Data:    packageToResponse(updated),
		Message: "Package edited successfully",
	})
}

// DeletePackage godoc
// @Summary Delete a package
// @Tags packages
// @Security BearerAuth
// @Produce json
// @Param id path int true "Package id"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/package/delete/package/{id} [delete]
func (s *Server) DeletePackage(c echo.Context) error {
	packageID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid package id"})
	}

	cmd, err := commands.NewDeletePackageCommand(packageID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	}

	err = s.deletePackageHandler.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "Package not found"})
	}
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Package deleted"})
}

func (s *Server) bindPackagePatch(c echo.Context) (ports.PackagePatch, error) {
	var req EditPackageRequest
	if err := c.Bind(&req); err != nil {
		return ports.PackagePatch{}, errors.New("Invalid request body")
	}

	return packagePatchFromRequest(req)
}

// internalError hides store and infrastructure failures from clients.
// The original error is logged; the response carries a fixed message.
func (s *Server) internalError(c echo.Context, err error) error {
	s.logger.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)

	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal Server Error"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
