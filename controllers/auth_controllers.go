package controllers

import (
	"github.com/gin-gonic/gin"

	"booking/errors"
	"booking/response"
	"booking/services"
	"booking/validator"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) AuthController {
	return AuthController{service: service}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateCredentials(req.Email, req.Password); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, err := a.service.Register(req.Email, req.Password)
	if err != nil {
		switch errors.CodeOf(err) {
		case errors.ErrCodeUserExists:
			response.Conflict(c)
		case errors.ErrCodeValidation:
			response.ValidationError(c, err.Error())
		default:
			response.ServerError(c)
		}
		return
	}

	response.Created(c, user)
}

func (a AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateCredentials(req.Email, req.Password); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	user, token, err := a.service.Login(req.Email, req.Password)
	if err != nil {
		switch errors.CodeOf(err) {
		case errors.ErrCodeUnauthorized:
			response.Unauthorized(c)
		default:
			response.ServerError(c)
		}
		return
	}

	response.Success(c, gin.H{
		"user":  user,
		"token": token,
	})
}

func (a AuthController) Logout(c *gin.Context) {
	token, exists := c.Get("token")
	if !exists {
		response.Unauthorized(c)
		return
	}

	if err := a.service.Logout(token.(string)); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func (a AuthController) AuthGoogle(c *gin.Context) {
	var req struct {
		TokenId string `json:"tokenId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := a.service.GoogleLogin(req.TokenId)
	if err != nil {
		switch errors.CodeOf(err) {
		case errors.ErrCodeInvalidToken:
			response.Unauthorized(c)
		case errors.ErrCodeInvalidEmail:
			response.BadRequest(c, err.Error())
		default:
			response.ServerError(c)
		}
		return
	}

	response.Success(c, gin.H{
		"user":  user,
		"token": token,
	})
}
