package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/middleware"
	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// UserHandler handles authentication and account HTTP endpoints.
type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Login handles POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorDetail(c, 400, "Invalid request body", err.Error())
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessFields(c, 200, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Register handles POST /users/register
func (h *UserHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorDetail(c, 400, "Invalid request body", err.Error())
		return
	}

	user, err := h.authService.RegisterUser(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, 201, "User registered successfully", "user", user)
}

// RegisterAdmin handles POST /users/register-admin. The body is multipart:
// profile fields plus the ktp and portofolio documents.
func (h *UserHandler) RegisterAdmin(c *gin.Context) {
	input, ok := h.bindAdminForm(c)
	if !ok {
		return
	}
	if input.KTP == nil || input.Portofolio == nil {
		utils.Error(c, 400, "KTP and portofolio files are required")
		return
	}

	user, request, err := h.userService.RegisterAdminDaerah(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessFields(c, 201, "Admin daerah registered successfully", gin.H{
		"user":    user,
		"request": request,
	})
}

// CreateAdmin handles POST /users/admin. Same flow as RegisterAdmin but
// driven by a SUPER_ADMIN, so the documents are optional.
func (h *UserHandler) CreateAdmin(c *gin.Context) {
	input, ok := h.bindAdminForm(c)
	if !ok {
		return
	}

	user, request, err := h.userService.RegisterAdminDaerah(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessFields(c, 201, "Admin daerah created successfully", gin.H{
		"user":    user,
		"request": request,
	})
}

func (h *UserHandler) bindAdminForm(c *gin.Context) (*service.RegisterAdminInput, bool) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if username == "" || email == "" || password == "" {
		utils.Error(c, 400, "username, email and password are required")
		return nil, false
	}

	input := &service.RegisterAdminInput{
		Username: username,
		Email:    email,
		Password: password,
	}
	if alamat := c.PostForm("alamat"); alamat != "" {
		input.Alamat = &alamat
	}
	if raw := c.PostForm("daerahId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.Error(c, 400, "Invalid daerahId")
			return nil, false
		}
		input.DaerahID = &id
	}
	if nama := c.PostForm("namaDaerah"); nama != "" {
		input.NamaDaerah = &nama
	}

	ktp, err := formFile(c, "ktp")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid ktp file", err.Error())
		return nil, false
	}
	input.KTP = ktp

	portofolio, err := formFile(c, "portofolio")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid portofolio file", err.Error())
		return nil, false
	}
	input.Portofolio = portofolio

	return input, true
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Users retrieved successfully", "users", users)
}

// ListRegular handles GET /users/regular
func (h *UserHandler) ListRegular(c *gin.Context) {
	users, err := h.userService.ListRegular(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Users retrieved successfully", "users", users)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "User retrieved successfully", "user", user)
}

// Update handles PUT /users/:id. The body is multipart so documents can be
// replaced alongside profile fields.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	input := &service.UpdateUserInput{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Role:     c.PostForm("role"),
		Password: c.PostForm("password"),
	}
	if alamat := c.PostForm("alamat"); alamat != "" {
		input.Alamat = &alamat
	}

	ktp, err := formFile(c, "ktp")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid ktp file", err.Error())
		return
	}
	input.KTP = ktp

	portofolio, err := formFile(c, "portofolio")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid portofolio file", err.Error())
		return
	}
	input.Portofolio = portofolio

	actor := middleware.CurrentUser(c)
	actorRole := ""
	if actor != nil {
		actorRole = actor.Role
	}

	user, err := h.userService.Update(c.Request.Context(), id, input, actorRole)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "User updated successfully", "user", user)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "User deleted successfully", "", nil)
}
