package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogging-api/dto"
	"blogging-api/services"
)

// SignupHandler godoc
// @Summary      Register an account
// @Description  Create an account and return a one-hour bearer token
// @Tags         users
// @Accept       json
// @Param        user  body  dto.SignupRequest  true  "Account fields"
// @Produce      json
// @Success      200  {object}  dto.TokenDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /users/signup [post]
func SignupHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "Invalid request body"})
			return
		}

		token, err := svc.Signup(c.Request.Context(), services.SignupInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			respondUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.TokenDTO{Token: token})
	}
}

// SigninHandler godoc
// @Summary      Log in
// @Description  Verify credentials and return a one-hour bearer token
// @Tags         users
// @Accept       json
// @Param        credentials  body  dto.SigninRequest  true  "Credentials"
// @Produce      json
// @Success      200  {object}  dto.TokenDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /users/signin [post]
func SigninHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SigninRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "Invalid request body"})
			return
		}

		token, err := svc.Signin(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondUserError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.TokenDTO{Token: token})
	}
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "User already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Msg: "Invalid credentials"})
	default:
		serverError(c, err)
	}
}
