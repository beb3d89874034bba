package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/twtrd/twtrd/config"
	"github.com/twtrd/twtrd/middleware"
	"github.com/twtrd/twtrd/models"
	"github.com/twtrd/twtrd/repositories"
	"github.com/twtrd/twtrd/utils"
	"github.com/twtrd/twtrd/validation"
)

// UserController handles registration, login and current-user lookup.
type UserController struct {
	users *repositories.UserRepository
}

// NewUserController creates a UserController.
func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// loginPayload is the body returned on successful registration and login.
type loginPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func issueLoginPayload(user *models.User) (*loginPayload, error) {
	cfg := config.Get()
	token, err := utils.GenerateToken(user.ID, user.Username, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &loginPayload{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

// Current returns the authenticated user, or null for anonymous requests.
// Outside production it also hands the frontend a fresh CSRF token cookie.
func (u *UserController) Current(ctx *gin.Context) {
	if !config.Get().IsProduction() {
		ctx.SetCookie("CSRF-TOKEN", uuid.NewString(), 0, "/", "", false, false)
	}

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, nil)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Register creates a new account and returns a login payload.
func (u *UserController) Register(ctx *gin.Context) {
	var input validation.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.RespondError(ctx, utils.NewValidationError(map[string]string{"body": "Invalid request payload"}))
		return
	}

	if ok, errs := validation.ValidateRegisterInput(input); !ok {
		utils.RespondError(ctx, utils.NewValidationError(errs))
		return
	}

	email := strings.TrimSpace(input.Email)
	if _, err := u.users.FindByEmail(email); err == nil {
		utils.RespondError(ctx, utils.NewValidationError(map[string]string{
			"email": "A user has already registered with this address",
		}))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(ctx, err)
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	user := models.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.users.Create(&user); err != nil {
		utils.RespondError(ctx, err)
		return
	}

	payload, err := issueLoginPayload(&user)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payload)
}

// Login authenticates by email and password and returns a login payload.
func (u *UserController) Login(ctx *gin.Context) {
	var input validation.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.RespondError(ctx, utils.NewValidationError(map[string]string{"body": "Invalid request payload"}))
		return
	}

	if ok, errs := validation.ValidateLoginInput(input); !ok {
		utils.RespondError(ctx, utils.NewValidationError(errs))
		return
	}

	user, err := u.users.FindByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		// Unknown email reads the same as a wrong password on purpose.
		utils.RespondError(ctx, utils.NewInvalidCredentialsError())
		return
	}
	if !utils.CheckPassword(user.PasswordHash, input.Password) {
		utils.RespondError(ctx, utils.NewInvalidCredentialsError())
		return
	}

	payload, err := issueLoginPayload(user)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, payload)
}
