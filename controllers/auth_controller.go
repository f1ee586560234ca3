package controllers

import (
	"errors"
	"net/http"

	"github.com/PoojaSancheti/Low-PocEat/config"
	"github.com/PoojaSancheti/Low-PocEat/services"
	"github.com/PoojaSancheti/Low-PocEat/validation"

	"github.com/gin-gonic/gin"
)

// Fields are unbound on purpose: the validation rule list reports every
// broken field at once instead of gin aborting on the first.
type SignupInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if v := validation.ValidateSignup(config.DB, input.Username, input.Email, input.Password, input.ConfirmPassword); !v.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": v})
		return
	}

	user, token, err := services.SignupUser(input.Username, input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Account created successfully! You are now logged in.",
		"username": user.Username,
		"token":    token,
		"redirect": "/home",
	})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Next     string `json:"next"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
		return
	}

	redirect := input.Next
	if redirect == "" {
		redirect = "/home"
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "redirect": redirect})
}

func Logout(c *gin.Context) {
	token := c.GetString("sessionToken")
	if err := services.DeleteSession(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not end session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

type ResetPasswordInput struct {
	Username        string `json:"username"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ResetPassword overwrites the stored hash by username match, with no
// proof of ownership. Known security gap; see DESIGN.md before changing
// this to a token flow.
func ResetPassword(c *gin.Context) {
	var input ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.NewPassword == "" || input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Passwords do not match.",
			"redirect": "/auth/password-reset",
		})
		return
	}

	if err := services.ResetPassword(input.Username, input.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":    "User with this username does not exist.",
				"redirect": "/auth/password-reset",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Your password has been reset successfully. You can now log in with your new password.",
		"redirect": "/auth/login",
	})
}
