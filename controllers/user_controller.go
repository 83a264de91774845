package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mdtoufiquea/Smart-dine-server/entity"
	"github.com/mdtoufiquea/Smart-dine-server/pkg/resp"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct{ DB *gorm.DB }

func NewUserController(db *gorm.DB) *UserController { return &UserController{DB: db} }

// GET /users
func (ctl *UserController) List(c *gin.Context) {
	var users []entity.User
	if err := ctl.DB.Find(&users).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /users/:email
func (ctl *UserController) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	var user entity.User
	if err := ctl.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// unknown email is not an error here; the client checks for null
			resp.OK(c, nil)
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Photo    string `json:"photo"`
	Role     string `json:"role"`
}

// POST /users
func (ctl *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := strings.ToLower(req.Email)

	var exist entity.User
	if err := ctl.DB.Where("email = ?", email).First(&exist).Error; err == nil {
		resp.Msg(c, "User already exists")
		return
	}

	user := entity.User{
		Email:   email,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Photo:   req.Photo,
		Role:    req.Role,
	}
	if user.Role == "" {
		user.Role = "customer"
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		user.Password = string(hashed)
	}

	if err := ctl.DB.Create(&user).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, user)
}

// PATCH /users/role/:id
func (ctl *UserController) UpdateRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Role required")
		return
	}

	res := ctl.DB.Model(&entity.User{}).
		Where("id = ?", uint(id)).
		Update("role", req.Role)
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	resp.OK(c, gin.H{"updated": res.RowsAffected})
}

// DELETE /users/:id
func (ctl *UserController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	res := ctl.DB.Delete(&entity.User{}, uint(id))
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	resp.OK(c, gin.H{"deleted": res.RowsAffected})
}
