package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianhartanto/cafe-order-app/services"
	"github.com/adrianhartanto/cafe-order-app/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// Register -> create an admin account
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.Users.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "User registered", user)
}

// Login -> exchange credentials for a JWT
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	token, user, err := uc.Users.Login(req.Email, req.Password)
	if err != nil {
		// do not leak which half of the credentials was wrong
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// GetProfile -> the authenticated admin's own record
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")
	user, err := uc.Users.GetProfile(userID.(uint))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Profile", user)
}

// GetAllUsers -> list admin accounts
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.Users.ListUsers()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of users", users)
}
